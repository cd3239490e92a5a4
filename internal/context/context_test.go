package context

import (
	"strings"
	"testing"

	"csyntax/internal/frontend/lexer"
)

const (
	cleanProgram = `int main() {
    return 0;
}`

	brokenProgram = `int main( {`

	commentedProgram = `// header
int x; /* body */`
)

func TestAnalyzeCleanProgram(t *testing.T) {
	// Setup
	pipeline := NewPipeline(DefaultOptions())

	// Execute
	result := pipeline.Analyze("main.c", cleanProgram)

	// Verify
	if !result.Valid {
		t.Errorf("expected valid result, got %d diagnostics", len(result.Diagnostics))
	}
	if len(result.Diagnostics) != 0 {
		t.Errorf("expected no diagnostics, got %d", len(result.Diagnostics))
	}

	// Spot-check the token stream shape
	if len(result.Tokens) == 0 {
		t.Fatal("expected tokens, got none")
	}
	first := result.Tokens[0]
	if first.Kind != lexer.KEYWORD_TOKEN || first.Value != "int" {
		t.Errorf("unexpected first token: %s", first)
	}
}

func TestAnalyzeBrokenProgram(t *testing.T) {
	pipeline := NewPipeline(DefaultOptions())

	result := pipeline.Analyze("main.c", brokenProgram)

	if result.Valid {
		t.Error("expected invalid result")
	}
	if len(result.Diagnostics) != 2 {
		t.Errorf("expected 2 diagnostics, got %d", len(result.Diagnostics))
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	// Setup: one pipeline, same input twice
	pipeline := NewPipeline(DefaultOptions())

	// Execute
	first := pipeline.Analyze("main.c", brokenProgram)
	second := pipeline.Analyze("main.c", brokenProgram)

	// Verify: diagnostics from the first run must not leak into the second
	if len(first.Diagnostics) != len(second.Diagnostics) {
		t.Errorf("run results differ: %d vs %d diagnostics",
			len(first.Diagnostics), len(second.Diagnostics))
	}
	if first.Valid != second.Valid {
		t.Errorf("verdicts differ: %v vs %v", first.Valid, second.Valid)
	}
	if first.ID == second.ID {
		t.Error("expected distinct run identifiers")
	}
}

func TestRoundTripReconstruction(t *testing.T) {
	src := `int main() { /* c */ char *s = "a\"b"; return s[0] != '\n'; } // t`
	pipeline := NewPipeline(DefaultOptions())

	result := pipeline.Analyze("rt.c", src)

	// Every byte of the input is either a token lexeme or skipped
	// whitespace; offsets let us splice the original back together.
	var rebuilt strings.Builder
	pos := 0
	for _, tok := range result.Tokens {
		rebuilt.WriteString(src[pos:tok.Start.Offset])
		rebuilt.WriteString(tok.Value)
		pos = tok.Start.Offset + len(tok.Value)
	}
	rebuilt.WriteString(src[pos:])

	if rebuilt.String() != src {
		t.Errorf("round trip mismatch:\n got: %q\nwant: %q", rebuilt.String(), src)
	}

	// The gaps must be pure whitespace
	pos = 0
	for _, tok := range result.Tokens {
		gap := src[pos:tok.Start.Offset]
		if strings.TrimSpace(gap) != "" {
			t.Errorf("non-whitespace gap before %s: %q", tok, gap)
		}
		pos = tok.Start.Offset + len(tok.Value)
	}
}

func TestCommentFilteringOption(t *testing.T) {
	// Setup: comments excluded from reports
	opts := DefaultOptions()
	opts.IncludeComments = false
	pipeline := NewPipeline(opts)

	// Execute
	result := pipeline.Analyze("c.c", commentedProgram)

	// Verify: no comment tokens in the report, but the buffer keeps them
	for _, tok := range result.Tokens {
		if tok.Kind == lexer.COMMENT_TOKEN {
			t.Errorf("comment token leaked into report: %s", tok)
		}
	}
	buf := pipeline.Context.GetBuffer("c.c")
	var kept int
	for _, tok := range buf.Tokens {
		if tok.Kind == lexer.COMMENT_TOKEN {
			kept++
		}
	}
	if kept != 2 {
		t.Errorf("expected 2 comment tokens in buffer, got %d", kept)
	}
}

func TestBufferRegistry(t *testing.T) {
	pipeline := NewPipeline(nil)

	pipeline.Analyze("a.c", `int a;`)
	pipeline.Analyze("b.c", `int b;`)
	pipeline.Analyze("a.c", `int a2;`)

	bufs := pipeline.Context.AllBuffers()
	if len(bufs) != 2 {
		t.Fatalf("expected 2 buffers, got %d", len(bufs))
	}
	// Re-analyzing a name replaces the content but keeps its slot
	if bufs[0].Name != "a.c" || bufs[1].Name != "b.c" {
		t.Errorf("unexpected buffer order: %s, %s", bufs[0].Name, bufs[1].Name)
	}
	if bufs[0].Content != `int a2;` {
		t.Errorf("expected replaced content, got %q", bufs[0].Content)
	}
}

func TestStrictStatementsFlipVerdict(t *testing.T) {
	src := `if (x) y`

	relaxed := NewPipeline(DefaultOptions()).Analyze("s.c", src)
	if !relaxed.Valid {
		t.Error("expected heuristic finding to stay a warning by default")
	}

	opts := DefaultOptions()
	opts.StrictStatements = true
	strict := NewPipeline(opts).Analyze("s.c", src)
	if strict.Valid {
		t.Error("expected strict mode to flip the verdict")
	}
}

func TestCustomDialectKeywords(t *testing.T) {
	// Setup: extend the keyword table the way a config file would
	opts := DefaultOptions()
	opts.Dialect = lexer.DefaultDialect().WithKeywords([]string{"foreach"})
	pipeline := NewPipeline(opts)

	// Execute
	result := pipeline.Analyze("d.c", `foreach (x) { break; }`)

	// Verify
	if result.Tokens[0].Kind != lexer.KEYWORD_TOKEN {
		t.Errorf("expected 'foreach' classified as keyword, got %s", result.Tokens[0].Kind)
	}
}

func BenchmarkAnalyze(b *testing.B) {
	src := strings.Repeat(cleanProgram+"\n", 20)
	pipeline := NewPipeline(DefaultOptions())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pipeline.Analyze("bench.c", src)
	}
}
