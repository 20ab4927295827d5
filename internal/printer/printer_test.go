package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/formcheck/internal/core/styles"
)

func TestPrinter_PlainOutputForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("page %s", "a.html")
	p.Errorf("page %s", "b.html")
	p.Warnf("skipped")
	p.Printf("  detail")
	p.Headerf("Summary")

	want := styles.IconValid + " page a.html\n" +
		styles.IconInvalid + " page b.html\n" +
		styles.IconNotice + " skipped\n" +
		"  detail\n" +
		"Summary\n"
	assert.Equal(t, want, buf.String())
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))

	assert.NotNil(t, Ctx(context.Background()))
}
