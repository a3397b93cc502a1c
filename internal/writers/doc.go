// Package writers turns track points and star summaries into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, JSON/JSONL, pretty tables).
//   - core stays domain-only; pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
