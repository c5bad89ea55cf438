package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LechDutkiewicz/gsport-ai/internal/audit"
	"github.com/LechDutkiewicz/gsport-ai/internal/client/gsport"
	"github.com/LechDutkiewicz/gsport-ai/internal/domain"
	"github.com/LechDutkiewicz/gsport-ai/internal/llm"
	"github.com/LechDutkiewicz/gsport-ai/internal/prompt"
	"github.com/LechDutkiewicz/gsport-ai/pkg/logger"

	apperrors "github.com/LechDutkiewicz/gsport-ai/pkg/errors"
)

type mockStorefront struct {
	mock.Mock
}

func (m *mockStorefront) FetchProduct(ctx context.Context, productID string) (*gsport.ProductRecord, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gsport.ProductRecord), args.Error(1)
}

func (m *mockStorefront) UpdateProduct(ctx context.Context, xmlPayload string) (string, error) {
	args := m.Called(ctx, xmlPayload)
	return args.String(0), args.Error(1)
}

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (*llm.Result, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Result), args.Error(1)
}

type fixture struct {
	storefront *mockStorefront
	generator  *mockGenerator
	session    *domain.Session
	auditDir   string
	service    *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	storefront := &mockStorefront{}
	generator := &mockGenerator{}
	session := domain.NewSession()
	auditDir := t.TempDir()

	l := logger.NewWithWriter("test", "error", os.Stderr)
	renderer := prompt.NewRenderer(filepath.Join(t.TempDir(), "missing-templates"), l)

	svc := New(
		storefront,
		generator,
		renderer,
		session,
		audit.NewWriter(auditDir),
		Timeouts{Fetch: time.Second, Generate: time.Second, Update: time.Second},
		l,
	)
	svc.now = func() time.Time {
		return time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	}

	return &fixture{
		storefront: storefront,
		generator:  generator,
		session:    session,
		auditDir:   auditDir,
		service:    svc,
	}
}

func genResult(content string, promptTokens, completionTokens int64) *llm.Result {
	pricing := llm.Pricing{InputCostPerToken: 0.15 / 1_000_000, OutputCostPerToken: 0.60 / 1_000_000}
	return &llm.Result{
		Content:          content,
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		Cost:             pricing.Cost(promptTokens, completionTokens),
	}
}

func TestLoadProduct(t *testing.T) {
	f := newFixture(t)
	f.storefront.On("FetchProduct", mock.Anything, "12345").Return(&gsport.ProductRecord{
		ProdName:     "Rower Kross Level 5.0",
		ProdDescLong: "Opis roweru",
		PrdName:      "Kross",
		PrdLinkText:  "Polski producent rowerów",
		ProdOptions: []byte(`{
			"12345": {
				"7": {
					"name": "Kolor dominujący",
					"type": "choose",
					"values": {"4521": {"name": "Czerwony", "selected": "1"}}
				},
				"9": {
					"name": "Wzrost",
					"type": "info",
					"values": {"23533": {"name": "170"}, "23535": {"name": "172"}}
				}
			}
		}`),
	}, nil)

	snap, err := f.service.LoadProduct(context.Background(), "https://gsport.pl/rower-p12345.html")
	require.NoError(t, err)

	assert.Equal(t, "12345", snap.Product.ID)
	assert.Equal(t, "Rower Kross Level 5.0", snap.Product.Name)
	assert.Equal(t, "Kross", snap.Producer.Name)
	assert.Equal(t, "Czerwony", snap.Parameters.Color)
	assert.Equal(t, "4521", snap.Parameters.ColorRemoteID)
	require.NotNil(t, snap.HeightRange)
	assert.Equal(t, 170, snap.HeightRange.Min)
	assert.Equal(t, 172, snap.HeightRange.Max)
}

func TestLoadProduct_EmptyFieldsGetFallbacks(t *testing.T) {
	f := newFixture(t)
	f.storefront.On("FetchProduct", mock.Anything, "9").Return(&gsport.ProductRecord{}, nil)

	snap, err := f.service.LoadProduct(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, "Brak nazwy", snap.Product.Name)
	assert.Equal(t, "Brak opisu", snap.Product.Description)
}

func TestLoadProduct_InvalidInput(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.LoadProduct(context.Background(), "not a link")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	f.storefront.AssertNotCalled(t, "FetchProduct")
}

func TestLoadProduct_FetchFailureKeepsPriorState(t *testing.T) {
	f := newFixture(t)
	f.session.SetProduct(domain.ProductData{ID: "111", Name: "Poprzedni produkt"})
	f.storefront.On("FetchProduct", mock.Anything, "222").
		Return(nil, apperrors.Upstream("gsport", "status 500"))

	_, err := f.service.LoadProduct(context.Background(), "222")
	require.Error(t, err)

	snap := f.session.Snapshot()
	assert.Equal(t, "111", snap.Product.ID)
	assert.Equal(t, "Poprzedni produkt", snap.Product.Name)
}

func TestGenerateDescriptions_NoProductLoaded(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.GenerateDescriptions(context.Background(), true)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestGenerateDescriptions_FullPipeline(t *testing.T) {
	f := newFixture(t)
	f.session.SetProduct(domain.ProductData{ID: "12345", Name: "Rower Kross Level 5.0", Description: "Opis"})
	f.session.SetProducer(domain.ProducerData{Name: "Kross", Description: "Polski producent"})

	longContent := "<p>Świetny rower.</p><ul><li>rama: aluminium</li></ul>"
	f.generator.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "Rower Kross Level 5.0")
	})).Return(genResult(longContent, 100, 50), nil).Once()
	f.generator.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "<ul>")
	})).Return(genResult("Krótki opis roweru.", 40, 10), nil).Once()

	res, err := f.service.GenerateDescriptions(context.Background(), true)
	require.NoError(t, err)

	// Producer blurb is appended to the long description.
	assert.True(t, strings.HasPrefix(res.LongDescription, longContent))
	assert.Contains(t, res.LongDescription, "<h2>O marce Kross</h2><p>Polski producent</p>")
	assert.Equal(t, "Krótki opis roweru.", res.ShortDescription)
	assert.True(t, res.UsedDefaultTemplate)
	assert.Equal(t, prompt.TemplateBike, res.TemplateID)

	wantCost := (100*0.15 + 50*0.60 + 40*0.15 + 10*0.60) / 1_000_000
	assert.InEpsilon(t, wantCost, res.Cost, 1e-9)

	snap := f.session.Snapshot()
	assert.Equal(t, res.LongDescription, snap.Descriptions.Long)
	assert.Equal(t, res.ShortDescription, snap.Descriptions.Short)

	f.generator.AssertNumberOfCalls(t, "Generate", 2)
}

func TestGenerateDescriptions_NotBikeNoSpecsCost(t *testing.T) {
	f := newFixture(t)
	f.session.SetProduct(domain.ProductData{ID: "9", Name: "Kask Abus", Description: "Opis kasku"})

	// No bullet list in the output, so only the long call happens.
	f.generator.On("Generate", mock.Anything, mock.Anything).
		Return(genResult("<p>Opis bez listy.</p>", 100, 50), nil).Once()

	res, err := f.service.GenerateDescriptions(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, prompt.TemplateNotBike, res.TemplateID)
	assert.Empty(t, res.ShortDescription)
	assert.InEpsilon(t, 4.5e-5, res.Cost, 1e-12)
	f.generator.AssertNumberOfCalls(t, "Generate", 1)
}

func TestGenerateDescriptions_LongFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.session.SetProduct(domain.ProductData{ID: "9", Name: "Kask Abus"})

	f.generator.On("Generate", mock.Anything, mock.Anything).
		Return(nil, apperrors.Upstream("openai", "rate limited")).Once()

	_, err := f.service.GenerateDescriptions(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")

	// No partial state is written.
	assert.Empty(t, f.session.Snapshot().Descriptions.Long)
}

func TestGenerateDescriptions_ShortFailureIsNonFatal(t *testing.T) {
	f := newFixture(t)
	f.session.SetProduct(domain.ProductData{ID: "9", Name: "Rower"})

	f.generator.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return !strings.Contains(p, "<ul>")
	})).Return(genResult("<ul><li>lekki</li></ul>", 100, 50), nil).Once()
	f.generator.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "<ul>")
	})).Return(nil, apperrors.Deadline("openai", context.DeadlineExceeded)).Once()

	res, err := f.service.GenerateDescriptions(context.Background(), true)
	require.NoError(t, err)

	assert.NotEmpty(t, res.LongDescription)
	assert.Empty(t, res.ShortDescription)
	assert.InEpsilon(t, 4.5e-5, res.Cost, 1e-12)
}

func TestUpdateProducts(t *testing.T) {
	f := newFixture(t)
	f.session.SetProduct(domain.ProductData{ID: "111", Name: "Rower"})
	f.session.SetLongDescription("<p>opis</p>")
	f.session.SetColor("Czerwony", "4521")

	f.storefront.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(doc string) bool {
		return strings.Contains(doc, "<prod_id>111</prod_id>")
	})).Return("1 product updated", nil).Once()
	f.storefront.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(doc string) bool {
		return strings.Contains(doc, "<prod_id>222</prod_id>")
	})).Return("", apperrors.Upstream("gsport", "import rejected")).Once()

	res, err := f.service.UpdateProducts(context.Background(), []string{"222"})
	require.NoError(t, err)

	require.Len(t, res.Results, 2)
	assert.True(t, res.Results[0].Updated)
	assert.Equal(t, "1 product updated", res.Results[0].Response)
	assert.False(t, res.Results[1].Updated)
	assert.Contains(t, res.Results[1].Error, "import rejected")
	assert.Equal(t, []string{"111"}, res.ProcessedIDs)

	// Audit copies land in status-named directories.
	okFiles, err := filepath.Glob(filepath.Join(f.auditDir, "ok", "*_111.xml"))
	require.NoError(t, err)
	assert.Len(t, okFiles, 1)
	errFiles, err := filepath.Glob(filepath.Join(f.auditDir, "errors", "*_222.xml"))
	require.NoError(t, err)
	assert.Len(t, errFiles, 1)
}

func TestUpdateProducts_Validation(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.UpdateProducts(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	f.session.SetProduct(domain.ProductData{ID: "111", Name: "Rower"})
	_, err = f.service.UpdateProducts(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	f.storefront.AssertNotCalled(t, "UpdateProduct")
}

func TestPreviewXML(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.PreviewXML(nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	f.session.SetProduct(domain.ProductData{ID: "111", Name: "Rower"})
	f.session.SetLongDescription("opis")

	doc, err := f.service.PreviewXML(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(doc, "<item>"))

	doc, err = f.service.PreviewXML([]string{"222", "333"})
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(doc, "<item>"))
	assert.Contains(t, doc, "<prod_id>333</prod_id>")
}
