// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-order-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestPrincipalCtxKey(t *testing.T) {
	if PrincipalCtxKey.String() != "principal" {
		t.Errorf("expected 'principal', got '%s'", PrincipalCtxKey.String())
	}
}

func TestPrincipalFromContext_Success(t *testing.T) {
	want := models.Principal{Username: "alice", Role: models.RoleUser}
	ctx := ContextWithPrincipal(context.Background(), want)

	got, ok := PrincipalFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestPrincipalFromContext_Missing(t *testing.T) {
	got, ok := PrincipalFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if got != (models.Principal{}) {
		t.Errorf("expected zero principal, got %+v", got)
	}
}

func TestPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "alice")

	if _, ok := PrincipalFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestPrincipalFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"),
		models.Principal{Username: "alice"})

	if _, ok := PrincipalFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}

func TestPeerAddrFromContext(t *testing.T) {
	ctx := ContextWithPeerAddr(context.Background(), "198.51.100.7:40000")

	got, ok := PeerAddrFromContext(ctx)
	if !ok || got != "198.51.100.7:40000" {
		t.Errorf("expected stored peer address, got %q (ok=%v)", got, ok)
	}

	if _, ok := PeerAddrFromContext(context.Background()); ok {
		t.Error("expected ok=false without a peer address")
	}
	if _, ok := PeerAddrFromContext(ContextWithPeerAddr(context.Background(), "")); ok {
		t.Error("expected ok=false for an empty peer address")
	}
}
