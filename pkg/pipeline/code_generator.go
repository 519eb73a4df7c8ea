package pipeline

import (
	"context"

	"github.com/conceptreel/conceptreel/pkg/codegen"
	"github.com/conceptreel/conceptreel/pkg/providers"
)

// CodeGenerator invokes provider federation with the verbose prompt,
// post-processes the reply, validates MainScene, and falls back to the
// built-in template catalogue when every provider fails.
type CodeGenerator struct {
	chain *providers.FallbackChain
}

// NewCodeGenerator builds a CodeGenerator over chain.
func NewCodeGenerator(chain *providers.FallbackChain) *CodeGenerator {
	return &CodeGenerator{chain: chain}
}

func (g *CodeGenerator) Name() string       { return "code-generator" }
func (g *CodeGenerator) InputTopic() string  { return TopicNarrativeComposed }
func (g *CodeGenerator) OutputTopic() string { return TopicCodeGenerated }

func (g *CodeGenerator) Run(ctx context.Context, jc *JobContext) error {
	raw, err := providers.GenerateCode(ctx, g.chain, jc.Narrative.VerbosePrompt)
	if err == nil {
		code := codegen.ExtractCode(raw)
		if valErr := codegen.ValidateMainScene(code); valErr == nil {
			jc.GeneratedCode = code
			jc.UsedAI = true
			return nil
		} else {
			err = valErr
		}
	}

	if tmpl, ok := codegen.MatchTemplate(jc.Job.Concept); ok {
		jc.GeneratedCode = tmpl
		jc.UsedAI = false
		return nil
	}

	jc.Err = err
	return err
}
