package services

import (
	"context"
	"fmt"

	"ads-video-pipeline/application/ports/inbound"
	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
)

// finalAssembler concatenates each selected hook with the single body clip.
// Cardinality is exactly the number of selected hooks: the body is fixed.
type finalAssembler struct {
	logger outbound.LoggerPort
	store  outbound.SessionStorePort
	cutter outbound.MediaCutterPort
}

func NewFinalAssembler(logger outbound.LoggerPort, store outbound.SessionStorePort,
	cutter outbound.MediaCutterPort) inbound.FinalAssemblerPort {
	return &finalAssembler{
		logger: logger,
		store:  store,
		cutter: cutter,
	}
}

func (f *finalAssembler) Assemble(ctx context.Context, sessionKey string, hookNames []string, bodyName string) ([]domain.FinalVideo, error) {
	session, err := f.store.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	bodyWindow, err := f.bodyWindow(session, bodyName)
	if err != nil {
		return nil, err
	}

	var finals []domain.FinalVideo
	for _, hookName := range hookNames {
		hookWindow, imageRef, err := f.hookWindow(session, hookName)
		if err != nil {
			f.logger.ErrorWithFields(err, "skipping hook in final assembly", map[string]interface{}{
				"sessionKey": sessionKey,
				"hookName":   hookName,
			})
			continue
		}

		name := domain.FinalVideoName(
			domain.ContextID(hookName),
			domain.CharacterID(hookName),
			domain.ImageName(imageRef),
			domain.HookOrdinal(hookName),
		)

		url, err := f.cutter.Merge(ctx, []domain.ClipWindow{hookWindow, bodyWindow}, name)
		if err != nil {
			f.logger.ErrorWithFields(err, "final merge failed", map[string]interface{}{
				"sessionKey": sessionKey,
				"hookName":   hookName,
			})
			continue
		}

		finals = append(finals, domain.FinalVideo{
			VideoName: name,
			MediaURL:  url,
			HookName:  hookName,
			BodyName:  bodyWindow.VideoName,
		})
	}

	if len(finals) == 0 {
		return nil, fmt.Errorf("no final videos produced")
	}

	session.FinalVideos = upsertFinals(session.FinalVideos, finals)
	persistSession(ctx, f.store, f.logger, session)

	f.logger.InfoWithFields("final assembly finished", map[string]interface{}{
		"sessionKey": sessionKey,
		"produced":   len(finals),
	})
	return finals, nil
}

// bodyWindow resolves the fixed body side: a named accepted clip, or the
// merged body when no name is given.
func (f *finalAssembler) bodyWindow(session *domain.WorkingSession, bodyName string) (domain.ClipWindow, error) {
	if bodyName == "" {
		if session.BodyMergedURL == "" {
			return domain.ClipWindow{}, fmt.Errorf("no body selected and no merged body available")
		}
		return domain.ClipWindow{VideoName: "BODY_MERGED", MediaURL: session.BodyMergedURL}, nil
	}
	r := session.FindResult(bodyName)
	if r == nil || r.MediaURL == "" {
		return domain.ClipWindow{}, fmt.Errorf("body %s has no media", bodyName)
	}
	return windowFor(r), nil
}

// hookWindow resolves one hook side: a merged hook group by its M name, or
// an individual accepted hook clip.
func (f *finalAssembler) hookWindow(session *domain.WorkingSession, hookName string) (domain.ClipWindow, string, error) {
	if url, ok := session.HookMergedURLs[hookName]; ok {
		return domain.ClipWindow{VideoName: hookName, MediaURL: url}, "", nil
	}
	r := session.FindResult(hookName)
	if r == nil || r.MediaURL == "" {
		return domain.ClipWindow{}, "", fmt.Errorf("hook %s has no media", hookName)
	}
	return windowFor(r), r.ImageRef, nil
}

func upsertFinals(existing, produced []domain.FinalVideo) []domain.FinalVideo {
	for _, fv := range produced {
		replaced := false
		for i := range existing {
			if existing[i].VideoName == fv.VideoName {
				existing[i] = fv
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, fv)
		}
	}
	return existing
}
