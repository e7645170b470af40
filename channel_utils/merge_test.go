package channel_utils

import (
	"sort"
	"testing"

	"ads-video-pipeline/mock"
)

func TestMergeChannels(t *testing.T) {
	first := make(chan int)
	second := make(chan int)

	merged, err := MergeChannels(mock.NewDispatcher(), first, second)
	if err != nil {
		t.Fatal(err)
	}

	go func() {
		first <- 1
		first <- 2
		close(first)
	}()
	go func() {
		second <- 3
		close(second)
	}()

	var got []int
	for v := range merged {
		got = append(got, v)
	}
	sort.Ints(got)

	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestMergeChannelsClosesWhenEmpty(t *testing.T) {
	merged, err := MergeChannels[int](mock.NewDispatcher())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := <-merged; ok {
		t.Fatal("merged channel with no sources must close immediately")
	}
}
