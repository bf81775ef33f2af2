// File: api/api_test.go
// Author: momentics <momentics@gmail.com>

package api

import (
	"errors"
	"testing"
)

func TestStructuredError(t *testing.T) {
	err := NewError(ErrCodeNoRoute, "no route").WithContext("dest", "10.0.0.1")
	if err.Code != ErrCodeNoRoute {
		t.Fatalf("code = %v", err.Code)
	}
	msg := err.Error()
	if msg == "no route" {
		t.Error("context missing from message")
	}
	var plain = NewError(ErrCodeInternal, "boom")
	plain.Context = nil
	if plain.Error() != "boom" {
		t.Errorf("plain message = %q", plain.Error())
	}
}

func TestShutdownModeOrdering(t *testing.T) {
	// platform values: read=0, write=1, both=2 everywhere we build
	if ShutRead != 0 || ShutWrite != 1 || ShutBoth != 2 {
		t.Fatalf("unexpected shutdown constants: %d %d %d", ShutRead, ShutWrite, ShutBoth)
	}
}

func TestContextCloneIsolation(t *testing.T) {
	ctx := ContextFrom(map[string]any{"a": 1})
	child := ctx.Clone()
	child.Set("a", 2)
	child.Set("b", 3)

	v, _ := ctx.Get("a")
	if v != 1 {
		t.Errorf("parent mutated: a = %v", v)
	}
	if _, ok := ctx.Get("b"); ok {
		t.Error("parent gained child key")
	}
	if len(child.Keys()) != 2 {
		t.Errorf("child keys = %v", child.Keys())
	}
	child.Delete("b")
	if _, ok := child.Get("b"); ok {
		t.Error("delete failed")
	}
}

func TestChannelFunc(t *testing.T) {
	called := false
	ch := ChannelFunc(func(p *Params) (Socket, error) {
		called = true
		return nil, ErrChannelClosed
	})
	_, err := ch.Create(&Params{})
	if !called {
		t.Fatal("adapter did not invoke the function")
	}
	if !errors.Is(err, ErrChannelClosed) {
		t.Fatalf("err = %v", err)
	}
}

func TestParamsProtoHelpers(t *testing.T) {
	p := &Params{Proto: ProtoTCP}
	if !p.TCP() || p.UDP() {
		t.Error("proto helpers disagree with ProtoTCP")
	}
	p.Proto = ProtoUDP
	if p.TCP() || !p.UDP() {
		t.Error("proto helpers disagree with ProtoUDP")
	}
}
