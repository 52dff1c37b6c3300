// ABOUTME: Asset and AssetConfiguration describe an alert's audio clips
// ABOUTME: Assets are keyed by AVS id with an ordered playback token list
package models

import (
	"sort"
	"time"
)

// Asset is a named, URL-addressable audio clip associated with an alert
type Asset struct {
	AVSID string `json:"avs_id"`
	URL   string `json:"url"`
}

// AssetConfiguration holds an alert's asset catalog, the ordered playback
// token list, looping parameters, and the default background asset.
// PlayOrder tokens refer into Assets by AVS id or name the background asset.
type AssetConfiguration struct {
	Assets            map[string]Asset `json:"assets"`
	PlayOrder         []string         `json:"play_order"`
	BackgroundAssetID string           `json:"background_asset_id"`
	LoopCount         int              `json:"loop_count"`
	LoopPause         time.Duration    `json:"loop_pause"`
}

// LoopPauseMilliseconds returns the loop pause in the unit the storage
// layer persists
func (c *AssetConfiguration) LoopPauseMilliseconds() int {
	return int(c.LoopPause / time.Millisecond)
}

// NewAssetConfiguration creates an empty asset configuration
func NewAssetConfiguration() AssetConfiguration {
	return AssetConfiguration{
		Assets:    make(map[string]Asset),
		PlayOrder: []string{},
	}
}

// AddAsset adds an asset to the catalog, keyed by its AVS id
func (c *AssetConfiguration) AddAsset(avsID, url string) {
	if c.Assets == nil {
		c.Assets = make(map[string]Asset)
	}
	c.Assets[avsID] = Asset{AVSID: avsID, URL: url}
}

// AppendPlayOrderToken appends a token to the playback order
func (c *AssetConfiguration) AppendPlayOrderToken(token string) {
	c.PlayOrder = append(c.PlayOrder, token)
}

// SortedAssetIDs returns the catalog keys in lexical order for stable output
func (c *AssetConfiguration) SortedAssetIDs() []string {
	ids := make([]string, 0, len(c.Assets))
	for id := range c.Assets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
