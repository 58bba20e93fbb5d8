package service

import (
	"errors"
	"testing"

	"github.com/finotty/duqueLoja/internal/constants"
	"github.com/finotty/duqueLoja/internal/models"
	"github.com/finotty/duqueLoja/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCatalogService(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t, &models.Product{}, &models.CustomProduct{}, &models.ProductTemplate{})
	svc := NewCatalogService(
		repository.NewProductRepository(db),
		repository.NewCustomProductRepository(db),
		repository.NewProductTemplateRepository(db),
	)
	return svc, db
}

func seedTemplate(t *testing.T, db *gorm.DB, name, category string) *models.ProductTemplate {
	t.Helper()
	template := &models.ProductTemplate{
		Name:        name,
		Description: "desc",
		Image:       "/img/t.jpg",
		Category:    category,
	}
	if err := db.Create(template).Error; err != nil {
		t.Fatalf("seed template failed: %v", err)
	}
	return template
}

func TestCatalogFetchAllMergesBothTables(t *testing.T) {
	svc, db := newCatalogService(t)

	base := models.Product{
		Name:            "Pistola TS9 Striker",
		Category:        constants.CategoryPistols,
		Price:           models.NewMoneyFromDecimal(decimal.RequireFromString("4899.90")),
		DisplayLocation: constants.PlacementFeatured,
	}
	if err := db.Create(&base).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	custom := models.CustomProduct{
		Name:            "Colete Modular Tático",
		Category:        constants.CategoryTactical,
		Price:           models.NewMoneyFromDecimal(decimal.RequireFromString("749.00")),
		DisplayLocation: constants.PlacementTactical,
		CreatedBy:       1,
	}
	if err := db.Create(&custom).Error; err != nil {
		t.Fatalf("seed custom product failed: %v", err)
	}

	items, err := svc.FetchAll()
	if err != nil {
		t.Fatalf("fetch all failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 merged items, got %d", len(items))
	}
	// base rows come first
	if items[0].Name != "Pistola TS9 Striker" || items[0].Custom {
		t.Fatalf("expected base row first, got: %+v", items[0])
	}
	if items[1].Name != "Colete Modular Tático" || !items[1].Custom {
		t.Fatalf("expected custom row flagged, got: %+v", items[1])
	}
	if items[0].PriceLabel != "R$ 4.899,90" {
		t.Fatalf("unexpected price label: %q", items[0].PriceLabel)
	}
}

func TestCatalogFetchByPlacement(t *testing.T) {
	svc, db := newCatalogService(t)

	rows := []models.Product{
		{Name: "A", Category: constants.CategoryPistols, DisplayLocation: constants.PlacementHeader},
		{Name: "B", Category: constants.CategoryPistols, DisplayLocation: constants.PlacementFeatured},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	items, err := svc.FetchByPlacement("header")
	if err != nil {
		t.Fatalf("fetch by placement failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "A" {
		t.Fatalf("unexpected placement result: %+v", items)
	}

	if _, err := svc.FetchByPlacement("sidebar"); !errors.Is(err, ErrPlacementInvalid) {
		t.Fatalf("expected ErrPlacementInvalid, got: %v", err)
	}
}

func TestCatalogFetchByName(t *testing.T) {
	svc, db := newCatalogService(t)

	if err := db.Create(&models.Product{
		Name:            "Revólver RT 838 Inox",
		Category:        constants.CategoryRevolvers,
		Price:           models.NewMoneyFromDecimal(decimal.RequireFromString("3150.00")),
		DisplayLocation: constants.PlacementRecommended,
	}).Error; err != nil {
		t.Fatalf("seed base product failed: %v", err)
	}
	if err := db.Create(&models.CustomProduct{
		Name:            "Lanterna Tática 1200lm",
		Category:        constants.CategoryTactical,
		Price:           models.NewMoneyFromDecimal(decimal.RequireFromString("289.90")),
		DisplayLocation: constants.PlacementTactical,
		CreatedBy:       1,
	}).Error; err != nil {
		t.Fatalf("seed custom product failed: %v", err)
	}

	base, err := svc.FetchByName(" Revólver RT 838 Inox ")
	if err != nil {
		t.Fatalf("fetch base by name failed: %v", err)
	}
	if base.Custom || base.PriceLabel != "R$ 3.150,00" {
		t.Fatalf("unexpected base item: %+v", base)
	}

	custom, err := svc.FetchByName("Lanterna Tática 1200lm")
	if err != nil {
		t.Fatalf("fetch custom by name failed: %v", err)
	}
	if !custom.Custom {
		t.Fatalf("expected custom flag set, got: %+v", custom)
	}

	if _, err := svc.FetchByName("Inexistente"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if _, err := svc.FetchByName("  "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank name, got: %v", err)
	}
}

func TestCatalogRegisterCopiesTemplate(t *testing.T) {
	svc, db := newCatalogService(t)
	template := seedTemplate(t, db, "Espingarda Pump SG-12", constants.CategoryShotguns)

	product, err := svc.Register(RegisterProductInput{
		TemplateID:      template.ID,
		Price:           decimal.RequireFromString("5249.50"),
		DisplayLocation: "recommended",
		AdminID:         7,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if product.Name != template.Name || product.Category != template.Category {
		t.Fatalf("expected template copy, got: %+v", product)
	}
	if product.Price.String() != "5249.50" {
		t.Fatalf("expected operator price, got %s", product.Price.String())
	}
	if product.CreatedBy != 7 {
		t.Fatalf("expected registering admin recorded, got %d", product.CreatedBy)
	}

	// the template row never changes and keeps a zero price
	var fresh models.ProductTemplate
	if err := db.First(&fresh, template.ID).Error; err != nil {
		t.Fatalf("reload template failed: %v", err)
	}
	if !fresh.Price.Decimal.IsZero() {
		t.Fatalf("expected template price to stay zero, got %s", fresh.Price.String())
	}
}

func TestCatalogRegisterDuplicateNameAcrossTables(t *testing.T) {
	svc, db := newCatalogService(t)

	// duplicate against the base table
	baseTemplate := seedTemplate(t, db, "Pistola Compacta G2C", constants.CategoryPistols)
	if err := db.Create(&models.Product{
		Name:            "Pistola Compacta G2C",
		Category:        constants.CategoryPistols,
		DisplayLocation: constants.PlacementFeatured,
	}).Error; err != nil {
		t.Fatalf("seed base product failed: %v", err)
	}
	_, err := svc.Register(RegisterProductInput{
		TemplateID:      baseTemplate.ID,
		Price:           decimal.NewFromInt(100),
		DisplayLocation: "featured",
		AdminID:         1,
	})
	if !errors.Is(err, ErrProductNameTaken) {
		t.Fatalf("expected ErrProductNameTaken against base table, got: %v", err)
	}

	// duplicate against the operator table
	customTemplate := seedTemplate(t, db, "Revólver RT 605 Compacto", constants.CategoryRevolvers)
	if _, err := svc.Register(RegisterProductInput{
		TemplateID:      customTemplate.ID,
		Price:           decimal.NewFromInt(200),
		DisplayLocation: "featured",
		AdminID:         1,
	}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err = svc.Register(RegisterProductInput{
		TemplateID:      customTemplate.ID,
		Price:           decimal.NewFromInt(300),
		DisplayLocation: "featured",
		AdminID:         1,
	})
	if !errors.Is(err, ErrProductNameTaken) {
		t.Fatalf("expected ErrProductNameTaken against operator table, got: %v", err)
	}
}

func TestCatalogRegisterValidation(t *testing.T) {
	svc, db := newCatalogService(t)
	template := seedTemplate(t, db, "Carregador 9mm 17 Tiros", constants.CategoryAccessories)

	if _, err := svc.Register(RegisterProductInput{
		TemplateID:      template.ID,
		Price:           decimal.Zero,
		DisplayLocation: "featured",
	}); !errors.Is(err, ErrProductPriceInvalid) {
		t.Fatalf("expected ErrProductPriceInvalid for zero price, got: %v", err)
	}
	if _, err := svc.Register(RegisterProductInput{
		TemplateID:      template.ID,
		Price:           decimal.NewFromInt(-10),
		DisplayLocation: "featured",
	}); !errors.Is(err, ErrProductPriceInvalid) {
		t.Fatalf("expected ErrProductPriceInvalid for negative price, got: %v", err)
	}
	if _, err := svc.Register(RegisterProductInput{
		TemplateID:      template.ID,
		Price:           decimal.NewFromInt(10),
		DisplayLocation: "nowhere",
	}); !errors.Is(err, ErrPlacementInvalid) {
		t.Fatalf("expected ErrPlacementInvalid, got: %v", err)
	}
	if _, err := svc.Register(RegisterProductInput{
		TemplateID:      9999,
		Price:           decimal.NewFromInt(10),
		DisplayLocation: "featured",
	}); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got: %v", err)
	}
}

func TestCatalogListTemplates(t *testing.T) {
	svc, db := newCatalogService(t)
	seedTemplate(t, db, "T1", constants.CategoryPistols)
	seedTemplate(t, db, "T2", constants.CategorySport)

	all, err := svc.ListTemplates("")
	if err != nil {
		t.Fatalf("list templates failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(all))
	}

	sport, err := svc.ListTemplates("SPORT")
	if err != nil {
		t.Fatalf("list templates by category failed: %v", err)
	}
	if len(sport) != 1 || sport[0].Name != "T2" {
		t.Fatalf("unexpected category result: %+v", sport)
	}

	if _, err := svc.ListTemplates("melee"); !errors.Is(err, ErrCategoryInvalid) {
		t.Fatalf("expected ErrCategoryInvalid, got: %v", err)
	}
}

func TestCatalogFilters(t *testing.T) {
	items := []CatalogItem{
		{Name: "A", Category: constants.CategoryPistols, DisplayLocation: constants.PlacementHeader},
		{Name: "B", Category: constants.CategorySport, DisplayLocation: constants.PlacementSport},
		{Name: "C", Category: constants.CategoryPistols, DisplayLocation: constants.PlacementFeatured},
	}

	pistols := ByCategory(items, " Pistols ")
	if len(pistols) != 2 {
		t.Fatalf("expected 2 pistols, got %d", len(pistols))
	}
	header := ByPlacement(items, "header")
	if len(header) != 1 || header[0].Name != "A" {
		t.Fatalf("unexpected placement filter result: %+v", header)
	}
	if got := ByCategory(items, "unknown"); len(got) != 0 {
		t.Fatalf("expected empty result for unknown category, got: %+v", got)
	}
}
