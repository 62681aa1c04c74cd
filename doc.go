// Package infographic turns free-form text into structured infographic
// descriptions suitable for client-side rendering. Content analysis is
// delegated to Gemini models via Google GenAI; whenever the remote path is
// unavailable or returns unusable output, the same schema is derived locally
// from sentence segmentation and keyword heuristics.
//
// # Problem Statement
//
// Model replies are unreliable input: they arrive wrapped in code fences and
// prose, in the current schema or in an older type-based one, or not as JSON
// at all. The package treats the reply as an untrusted blob and pushes it
// through a deterministic chain:
//
//	remote call -> Clean -> parse -> Normalize
//
// with the heuristic fallback generator covering every failure at any stage.
// The entry point never returns an error; degraded results carry a diagnostic
// note instead.
//
// # Basic Usage
//
//	ctx := context.Background()
//	client, _ := genai.NewClient(ctx, &genai.ClientConfig{
//	    Backend: genai.BackendGeminiAPI,
//	    APIKey:  os.Getenv("GEMINI_API_KEY"),
//	})
//
//	g := infographic.New(client, infographic.WithTranscript("ai_output.log"))
//	result := g.Generate(ctx, "Compare cloud and on-prem hosting. Cloud scales. On-prem controls cost.")
//	// result.Layout == infographic.LayoutComparison
//
// A nil client is valid: every request then resolves through the local
// fallback generator. Pass a custom Invoker with WithInvoker to script the
// remote service in tests.
//
// # Schema Upgrades
//
// Older model replies describe sections with a "type" field (box, icon_box,
// arrow, connector, process, list). Normalize detects the schema by key
// presence and upgrades legacy sections into role/emphasis/visual_weight
// form using positional and type-based rules, so callers only ever see the
// current schema.
//
// # Diagnostics
//
// With a transcript configured, every raw exchange is appended to a
// write-only log file together with a note tag naming the path taken
// (the model used, API_FALLBACK, JSON_PARSE_FALLBACK, FALLBACK_USED or
// FATAL_ERROR).
package infographic
