package store

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/rushteam/mediarec/core"
)

// 存储编码用的中间结构：画像的排除集在领域层是 set，落库为有序数组，
// 保证同一画像两次编码字节一致。

type featureRecord struct {
	ItemID          string    `json:"item_id"`
	Vector          []float64 `json:"vector"`
	PopularityScore float64   `json:"popularity_score"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type profileRecord struct {
	UserID            string    `json:"user_id"`
	Vector            []float64 `json:"vector"`
	InteractedItemIDs []string  `json:"interacted_item_ids"`
	EngagementScore   float64   `json:"engagement_score"`
	Version           int64     `json:"version"`
	CreatedAt         time.Time `json:"created_at"`
	LastUpdated       time.Time `json:"last_updated"`
}

func encodeFeature(feat *core.ItemFeature) ([]byte, error) {
	return json.Marshal(featureRecord{
		ItemID:          feat.ItemID,
		Vector:          feat.Vector,
		PopularityScore: feat.PopularityScore,
		UpdatedAt:       feat.UpdatedAt,
	})
}

func decodeFeature(data []byte) (*core.ItemFeature, error) {
	var rec featureRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &core.ItemFeature{
		ItemID:          rec.ItemID,
		Vector:          rec.Vector,
		PopularityScore: rec.PopularityScore,
		UpdatedAt:       rec.UpdatedAt,
	}, nil
}

func encodeProfile(p *core.UserProfile) ([]byte, error) {
	ids := make([]string, 0, len(p.InteractedItemIDs))
	for id := range p.InteractedItemIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return json.Marshal(profileRecord{
		UserID:            p.UserID,
		Vector:            p.Vector,
		InteractedItemIDs: ids,
		EngagementScore:   p.EngagementScore,
		Version:           p.Version,
		CreatedAt:         p.CreatedAt,
		LastUpdated:       p.LastUpdated,
	})
}

func decodeProfile(data []byte) (*core.UserProfile, error) {
	var rec profileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	interacted := make(map[string]struct{}, len(rec.InteractedItemIDs))
	for _, id := range rec.InteractedItemIDs {
		interacted[id] = struct{}{}
	}
	return &core.UserProfile{
		UserID:            rec.UserID,
		Vector:            rec.Vector,
		InteractedItemIDs: interacted,
		EngagementScore:   rec.EngagementScore,
		Version:           rec.Version,
		CreatedAt:         rec.CreatedAt,
		LastUpdated:       rec.LastUpdated,
	}, nil
}
