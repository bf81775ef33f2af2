// File: control/control_test.go
// Author: momentics <momentics@gmail.com>

package control

import "testing"

func TestMetricsRegistryCounters(t *testing.T) {
	mr := NewMetricsRegistry()
	mr.Inc("sock.create.tcp")
	mr.Inc("sock.create.tcp")
	mr.Add("sock.create.udp", 3)

	if got := mr.Get("sock.create.tcp"); got != 2 {
		t.Fatalf("tcp counter = %d, want 2", got)
	}
	snap := mr.Snapshot()
	if snap["sock.create.udp"] != 3 {
		t.Fatalf("udp counter = %d, want 3", snap["sock.create.udp"])
	}
	if mr.Updated().IsZero() {
		t.Error("updated timestamp not set")
	}
	// snapshot is a copy
	snap["sock.create.udp"] = 99
	if mr.Get("sock.create.udp") != 3 {
		t.Error("snapshot mutation leaked into registry")
	}
}

func TestDebugProbes(t *testing.T) {
	dp := NewDebugProbes()
	dp.RegisterProbe("routes", func() any { return 4 })
	state := dp.DumpState()
	if state["routes"] != 4 {
		t.Fatalf("probe output = %v, want 4", state["routes"])
	}
	dp.UnregisterProbe("routes")
	if len(dp.DumpState()) != 0 {
		t.Error("probe not removed")
	}
}
