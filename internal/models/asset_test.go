// ABOUTME: Tests for asset configuration helpers
// ABOUTME: Covers catalog management, play order, and loop pause conversion
package models

import (
	"reflect"
	"testing"
	"time"
)

func TestAddAssetAndSortedIDs(t *testing.T) {
	cfg := NewAssetConfiguration()
	cfg.AddAsset("b", "https://cdn/b.mp3")
	cfg.AddAsset("a", "https://cdn/a.mp3")
	cfg.AddAsset("c", "https://cdn/c.mp3")

	if got := cfg.SortedAssetIDs(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("SortedAssetIDs() = %v, want [a b c]", got)
	}
	if cfg.Assets["a"].URL != "https://cdn/a.mp3" {
		t.Errorf("Assets[a].URL = %q", cfg.Assets["a"].URL)
	}
}

func TestAddAssetOnZeroValue(t *testing.T) {
	var cfg AssetConfiguration
	cfg.AddAsset("x", "u")
	if len(cfg.Assets) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(cfg.Assets))
	}
}

func TestAppendPlayOrderToken(t *testing.T) {
	cfg := NewAssetConfiguration()
	cfg.AppendPlayOrderToken("a")
	cfg.AppendPlayOrderToken("b")
	cfg.AppendPlayOrderToken("a")
	if !reflect.DeepEqual(cfg.PlayOrder, []string{"a", "b", "a"}) {
		t.Errorf("PlayOrder = %v", cfg.PlayOrder)
	}
}

func TestLoopPauseMilliseconds(t *testing.T) {
	cfg := NewAssetConfiguration()
	cfg.LoopPause = 1500 * time.Millisecond
	if got := cfg.LoopPauseMilliseconds(); got != 1500 {
		t.Errorf("LoopPauseMilliseconds() = %d, want 1500", got)
	}
}
