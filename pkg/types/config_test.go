package types

import (
	"errors"
	"math"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "default config is valid",
			config:  DefaultConfig(),
			wantErr: nil,
		},
		{
			name:    "negative items returns ErrItemsInvalid",
			config:  Config{Items: -1, Output: OutputText},
			wantErr: ErrItemsInvalid,
		},
		{
			name:    "unknown output returns ErrOutputUnknown",
			config:  Config{Items: 10, Output: "xml"},
			wantErr: ErrOutputUnknown,
		},
		{
			name:    "empty output returns ErrOutputUnknown",
			config:  Config{Items: 10},
			wantErr: ErrOutputUnknown,
		},
		{
			name:    "negative arena limit returns ErrArenaLimitInvalid",
			config:  Config{Items: 10, Output: OutputJSON, ArenaLimit: -2},
			wantErr: ErrArenaLimitInvalid,
		},
		{
			name:    "zero items with yaml output is valid",
			config:  Config{Items: 0, Output: OutputYAML},
			wantErr: nil,
		},
		{
			name:    "items at MaxItems is valid",
			config:  Config{Items: MaxItems, Output: OutputText},
			wantErr: nil,
		},
		{
			name:    "items above MaxItems returns ErrItemsInvalid",
			config:  Config{Items: MaxItems + 1, Output: OutputText},
			wantErr: ErrItemsInvalid,
		},
		{
			name:    "huge items returns ErrItemsInvalid",
			config:  Config{Items: math.MaxInt, Output: OutputText},
			wantErr: ErrItemsInvalid,
		},
		{
			name:    "node id at MaxNodeID is valid",
			config:  Config{Items: 1, Output: OutputText, Nodes: []NodeSpec{{ID: MaxNodeID, Name: "max"}, {ID: -MaxNodeID, Name: "min"}}},
			wantErr: nil,
		},
		{
			name:    "node id whose value overflows returns ErrNodeIDOutOfRange",
			config:  Config{Items: 1, Output: OutputText, Nodes: []NodeSpec{{ID: 1, Name: "alpha"}, {ID: 300000000, Name: "big"}}},
			wantErr: ErrNodeIDOutOfRange,
		},
		{
			name:    "negative node id below -MaxNodeID returns ErrNodeIDOutOfRange",
			config:  Config{Items: 1, Output: OutputText, Nodes: []NodeSpec{{ID: -MaxNodeID - 1, Name: "low"}}},
			wantErr: ErrNodeIDOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultNodes(t *testing.T) {
	nodes := DefaultNodes()
	if len(nodes) != 3 {
		t.Fatalf("expected 3 default nodes, got %d", len(nodes))
	}
	want := []string{"alpha", "beta", "gamma"}
	for i, n := range nodes {
		if n.ID != int32(i+1) || n.Name != want[i] {
			t.Errorf("node %d = %+v, want id=%d name=%s", i, n, i+1, want[i])
		}
	}
}
