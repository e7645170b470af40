package outbound

import (
	"context"

	"ads-video-pipeline/domain"
)

// MediaCutterPort is the abstract contract of the external cutting service:
// cut one clip to a millisecond keep-window, or concatenate an ordered list
// of cut clips into one output. Both return the URL of the produced media.
// The upstream service is documented at no more than 10 requests per minute.
type MediaCutterPort interface {
	Cut(ctx context.Context, window domain.ClipWindow, outputName string) (string, error)
	Merge(ctx context.Context, windows []domain.ClipWindow, outputName string) (string, error)
}
