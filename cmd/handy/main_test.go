package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/greyfold/toolbelt/internal/config"
	"github.com/greyfold/toolbelt/internal/numparse"
	"github.com/greyfold/toolbelt/internal/router"
)

func dispatch(t *testing.T, settings config.Settings, tokens ...string) (string, int) {
	t.Helper()
	var buf bytes.Buffer
	code := newRouter(settings).Dispatch(&buf, tokens)
	return buf.String(), code
}

func TestAddPrintsTrimmedSum(t *testing.T) {
	out, code := dispatch(t, config.Defaults(), "add", "2", "3")
	if code != router.ExitOK || out != "5\n" {
		t.Fatalf("add 2 3 = %q, exit %d", out, code)
	}
}

func TestAddRejectsBadLiteral(t *testing.T) {
	out, code := dispatch(t, config.Defaults(), "add", "2", "x")
	if code != router.ExitUsage {
		t.Fatalf("exit %d, want %d", code, router.ExitUsage)
	}
	if !strings.Contains(out, `Invalid number: "x"`) {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestAddHonorsCommaConvention(t *testing.T) {
	settings := config.Defaults()
	settings.Decimal = numparse.Comma
	out, code := dispatch(t, settings, "add", "2,5", "1,5")
	if code != router.ExitOK || out != "4\n" {
		t.Fatalf("add 2,5 1,5 = %q, exit %d", out, code)
	}
}

func TestGreet(t *testing.T) {
	out, code := dispatch(t, config.Defaults(), "greet")
	if code != router.ExitOK || out != "Hello, World!\n" {
		t.Fatalf("greet = %q, exit %d", out, code)
	}
	out, code = dispatch(t, config.Defaults(), "greet", "Ada")
	if code != router.ExitOK || out != "Hello, Ada!\n" {
		t.Fatalf("greet Ada = %q, exit %d", out, code)
	}
}

func TestNowArity(t *testing.T) {
	_, code := dispatch(t, config.Defaults(), "now", "extra")
	if code != router.ExitUsage {
		t.Fatalf("now extra: exit %d, want %d", code, router.ExitUsage)
	}
}

func TestVersionOutput(t *testing.T) {
	out, code := dispatch(t, config.Defaults(), "version")
	if code != router.ExitOK || !strings.HasPrefix(out, "handy ") {
		t.Fatalf("version = %q, exit %d", out, code)
	}
}

func TestUnknownCommand(t *testing.T) {
	out, code := dispatch(t, config.Defaults(), "frob")
	if code != router.ExitUsage || !strings.Contains(out, "Unknown command: frob") {
		t.Fatalf("frob = %q, exit %d", out, code)
	}
}
