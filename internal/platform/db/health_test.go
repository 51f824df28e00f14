package db

import (
	"encoding/json"
	"testing"
)

func TestPoolStats_JSON(t *testing.T) {
	stats := PoolStats{TotalConns: 4, IdleConns: 2, AcquiredConns: 2, MaxConns: 10}

	data, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]int32
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"total_conns", "idle_conns", "acquired_conns", "max_conns"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing %q in %s", key, data)
		}
	}
	if decoded["total_conns"] != 4 || decoded["max_conns"] != 10 {
		t.Errorf("unexpected values in %s", data)
	}
}
