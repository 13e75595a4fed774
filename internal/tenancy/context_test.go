package tenancy

import (
	"context"
	"testing"
)

func TestTenantIDRoundTrip(t *testing.T) {
	ctx := WithTenantID(context.Background(), "tenant-7")
	got, ok := TenantIDFromContext(ctx)
	if !ok || got != "tenant-7" {
		t.Fatalf("expected tenant-7, got %q ok=%v", got, ok)
	}
}

func TestTenantIDMissing(t *testing.T) {
	if _, ok := TenantIDFromContext(context.Background()); ok {
		t.Fatal("expected no tenant id on bare context")
	}
}

func TestTenantIDEmptyTreatedAsMissing(t *testing.T) {
	ctx := WithTenantID(context.Background(), "")
	if _, ok := TenantIDFromContext(ctx); ok {
		t.Fatal("expected empty tenant id to be treated as missing")
	}
}
