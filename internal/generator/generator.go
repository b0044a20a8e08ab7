// Package generator asks Gemini to invent data packs of species and moves.
package generator

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"gopkg.in/yaml.v3"

	"github.com/tatianab/pocket-battle/internal/dex"
	"github.com/tatianab/pocket-battle/internal/pokemon"
	"github.com/tatianab/pocket-battle/internal/typechart"
)

//go:embed prompts/generate_pack.txt
var generatePackPrompt string

var packTemplate = template.Must(template.New("generate_pack").Parse(generatePackPrompt))

type Generator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func New(ctx context.Context, apiKey string) (*Generator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &Generator{
		client: client,
		model:  client.GenerativeModel("gemini-2.5-flash"),
	}, nil
}

func (g *Generator) Close() {
	g.client.Close()
}

// GeneratePack produces a validated pack themed around hint.
func (g *Generator) GeneratePack(ctx context.Context, hint string) (*dex.Pack, error) {
	prompt, err := buildPrompt(hint)
	if err != nil {
		return nil, err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response type from Gemini")
	}

	return ParsePack(string(text))
}

func buildPrompt(hint string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Hint     string
		Types    []typechart.Type
		MaxMoves int
	}{
		Hint:     hint,
		Types:    typechart.Types,
		MaxMoves: pokemon.MaxMoves,
	}
	if err := packTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParsePack decodes a model reply, tolerating Markdown fences, and validates
// the result.
func ParsePack(reply string) (*dex.Pack, error) {
	cleanYAML := strings.TrimSpace(reply)
	cleanYAML = strings.TrimPrefix(cleanYAML, "```yaml")
	cleanYAML = strings.TrimPrefix(cleanYAML, "```")
	cleanYAML = strings.TrimSuffix(cleanYAML, "```")

	var respData struct {
		Title       string           `yaml:"title"`
		Description string           `yaml:"description"`
		Moves       []dex.MoveDef    `yaml:"moves"`
		Species     []dex.SpeciesDef `yaml:"species"`
	}
	if err := yaml.Unmarshal([]byte(cleanYAML), &respData); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w\nOutput was: %s", err, cleanYAML)
	}

	pack := &dex.Pack{
		Title:       respData.Title,
		Description: respData.Description,
		Moves:       respData.Moves,
		Species:     respData.Species,
	}
	if _, err := dex.New(pack); err != nil {
		return nil, err
	}
	return pack, nil
}
