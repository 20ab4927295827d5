package logging

import (
	"context"
	"testing"
)

func TestWithFormID(t *testing.T) {
	ctx := WithFormID(context.Background(), "signupForm")

	if got := GetFormID(ctx); got != "signupForm" {
		t.Errorf("GetFormID() = %q, want %q", got, "signupForm")
	}
}

func TestWithPage(t *testing.T) {
	ctx := WithPage(context.Background(), "pages/signup.html")

	if got := GetPage(ctx); got != "pages/signup.html" {
		t.Errorf("GetPage() = %q, want %q", got, "pages/signup.html")
	}
}

func TestContextValues_NotPresent(t *testing.T) {
	ctx := context.Background()

	if got := GetFormID(ctx); got != "" {
		t.Errorf("GetFormID() = %q, want empty string", got)
	}
	if got := GetPage(ctx); got != "" {
		t.Errorf("GetPage() = %q, want empty string", got)
	}
}
