package cart

import (
	"encoding/json"
	"fmt"

	"tripcart/models"
)

// SnapshotVersion is written into every persisted record.
const SnapshotVersion = 1

type snapshotEnvelope struct {
	Version int                 `json:"version"`
	State   models.CartSnapshot `json:"state"`
}

// EncodeSnapshot serializes snap into the persisted record format.
func EncodeSnapshot(snap models.CartSnapshot) ([]byte, error) {
	data, err := json.Marshal(snapshotEnvelope{Version: SnapshotVersion, State: normalize(snap)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a persisted record. Missing collections decode as empty.
func DecodeSnapshot(data []byte) (models.CartSnapshot, error) {
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return models.CartSnapshot{}, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	if env.Version != SnapshotVersion {
		return models.CartSnapshot{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}
	return normalize(env.State), nil
}

func normalize(snap models.CartSnapshot) models.CartSnapshot {
	if snap.Accommodations == nil {
		snap.Accommodations = []models.Accommodation{}
	}
	if snap.Experiences == nil {
		snap.Experiences = []models.Experience{}
	}
	if snap.NearbySuggestions == nil {
		snap.NearbySuggestions = []models.NearbySuggestion{}
	}
	return snap
}
