package main

import (
	"fmt"

	"github.com/finotty/duqueLoja/internal/config"
	"github.com/finotty/duqueLoja/internal/constants"
	"github.com/finotty/duqueLoja/internal/logger"
	"github.com/finotty/duqueLoja/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// catalog templates: descriptive data only, price stays zero until an
	// operator registers the product with a price and a placement
	templates := []models.ProductTemplate{
		{
			Name:        "Pistola TS9 Striker",
			Description: "Pistola semiautomática calibre 9mm, carregador de 17 tiros, armação em polímero.",
			Image:       "/img/templates/ts9-striker.jpg",
			Category:    constants.CategoryPistols,
			Specifications: models.SpecMap{
				"calibre":    "9mm",
				"capacidade": "17+1",
				"cano":       "102 mm",
				"peso":       "680 g",
			},
			SortOrder: 100,
		},
		{
			Name:        "Pistola Compacta G2C",
			Description: "Pistola compacta para porte velado, calibre 9mm, trilho para acessórios.",
			Image:       "/img/templates/g2c-compacta.jpg",
			Category:    constants.CategoryPistols,
			Specifications: models.SpecMap{
				"calibre":    "9mm",
				"capacidade": "12+1",
				"cano":       "83 mm",
			},
			SortOrder: 90,
		},
		{
			Name:        "Revólver RT 838 Inox",
			Description: "Revólver calibre .38 SPL, tambor de 6 tiros, acabamento inox fosco.",
			Image:       "/img/templates/rt838-inox.jpg",
			Category:    constants.CategoryRevolvers,
			Specifications: models.SpecMap{
				"calibre":    ".38 SPL",
				"capacidade": "6",
				"cano":       "4 pol",
			},
			SortOrder: 80,
		},
		{
			Name:        "Revólver RT 605 Compacto",
			Description: "Revólver compacto calibre .357 Magnum, tambor de 5 tiros, cabo emborrachado.",
			Image:       "/img/templates/rt605-compacto.jpg",
			Category:    constants.CategoryRevolvers,
			Specifications: models.SpecMap{
				"calibre":    ".357 Magnum",
				"capacidade": "5",
				"cano":       "2 pol",
			},
			SortOrder: 70,
		},
		{
			Name:        "Espingarda Pump SG-12",
			Description: "Espingarda de repetição calibre 12, capacidade 7+1, coronha sintética.",
			Image:       "/img/templates/sg12-pump.jpg",
			Category:    constants.CategoryShotguns,
			Specifications: models.SpecMap{
				"calibre":    "12 GA",
				"capacidade": "7+1",
				"cano":       "47 cm",
			},
			SortOrder: 60,
		},
		{
			Name:        "Coldre Kydex IWB",
			Description: "Coldre interno em kydex com retenção ajustável, destro.",
			Image:       "/img/templates/coldre-kydex.jpg",
			Category:    constants.CategoryAccessories,
			Specifications: models.SpecMap{
				"material": "kydex",
				"posicao":  "IWB",
			},
			SortOrder: 50,
		},
		{
			Name:        "Carregador 9mm 17 Tiros",
			Description: "Carregador sobressalente em aço carbono, acabamento oxidado.",
			Image:       "/img/templates/carregador-9mm.jpg",
			Category:    constants.CategoryAccessories,
			Specifications: models.SpecMap{
				"calibre":    "9mm",
				"capacidade": "17",
			},
			SortOrder: 45,
		},
		{
			Name:        "Colete Modular Tático",
			Description: "Colete modular com sistema MOLLE, ajuste lateral, porta-placas frontal e dorsal.",
			Image:       "/img/templates/colete-modular.jpg",
			Category:    constants.CategoryTactical,
			Specifications: models.SpecMap{
				"sistema": "MOLLE",
				"tamanho": "ajustável",
			},
			SortOrder: 40,
		},
		{
			Name:        "Lanterna Tática 1200lm",
			Description: "Lanterna de cano com 1200 lúmens, acionamento remoto e strobe.",
			Image:       "/img/templates/lanterna-tatica.jpg",
			Category:    constants.CategoryTactical,
			Specifications: models.SpecMap{
				"fluxo":       "1200 lm",
				"alimentacao": "CR123A",
			},
			SortOrder: 35,
		},
		{
			Name:        "Protetor Auricular Eletrônico",
			Description: "Abafador eletrônico com amplificação ambiente e corte automático de impulso.",
			Image:       "/img/templates/protetor-auricular.jpg",
			Category:    constants.CategorySport,
			Specifications: models.SpecMap{
				"nrr":         "23 dB",
				"alimentacao": "2x AAA",
			},
			SortOrder: 30,
		},
		{
			Name:        "Óculos de Tiro Ambar",
			Description: "Óculos de proteção balística com lente âmbar, padrão ANSI Z87.1.",
			Image:       "/img/templates/oculos-ambar.jpg",
			Category:    constants.CategorySport,
			Specifications: models.SpecMap{
				"lente":  "âmbar",
				"padrao": "ANSI Z87.1",
			},
			SortOrder: 25,
		},
	}

	for _, tpl := range templates {
		var existing models.ProductTemplate
		if err := models.DB.Where("name = ?", tpl.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&tpl).Error; err != nil {
				stdLog.Printf("Failed to create template %s: %v", tpl.Name, err)
			} else {
				stdLog.Printf("Created template: %s", tpl.Name)
			}
		} else {
			existing.Description = tpl.Description
			existing.Image = tpl.Image
			existing.Category = tpl.Category
			existing.Specifications = tpl.Specifications
			existing.SortOrder = tpl.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update template %s: %v", tpl.Name, err)
			} else {
				stdLog.Printf("Updated template: %s", tpl.Name)
			}
		}
	}

	// base storefront products, already priced and placed
	products := []models.Product{
		{
			Name:        "Pistola TS9 Striker",
			Description: "Pistola semiautomática calibre 9mm, carregador de 17 tiros, armação em polímero.",
			Image:       "/img/products/ts9-striker.jpg",
			Category:    constants.CategoryPistols,
			Specifications: models.SpecMap{
				"calibre":    "9mm",
				"capacidade": "17+1",
				"cano":       "102 mm",
			},
			Price:           models.NewMoneyFromDecimal(decimal.NewFromFloat(4899.90)),
			DisplayLocation: constants.PlacementFeatured,
			SortOrder:       100,
		},
		{
			Name:        "Revólver RT 838 Inox",
			Description: "Revólver calibre .38 SPL, tambor de 6 tiros, acabamento inox fosco.",
			Image:       "/img/products/rt838-inox.jpg",
			Category:    constants.CategoryRevolvers,
			Specifications: models.SpecMap{
				"calibre":    ".38 SPL",
				"capacidade": "6",
			},
			Price:           models.NewMoneyFromDecimal(decimal.NewFromFloat(3599.00)),
			DisplayLocation: constants.PlacementHeader,
			SortOrder:       95,
		},
		{
			Name:        "Espingarda Pump SG-12",
			Description: "Espingarda de repetição calibre 12, capacidade 7+1, coronha sintética.",
			Image:       "/img/products/sg12-pump.jpg",
			Category:    constants.CategoryShotguns,
			Specifications: models.SpecMap{
				"calibre":    "12 GA",
				"capacidade": "7+1",
			},
			Price:           models.NewMoneyFromDecimal(decimal.NewFromFloat(5249.50)),
			DisplayLocation: constants.PlacementRecommended,
			SortOrder:       90,
		},
		{
			Name:        "Coldre Kydex IWB",
			Description: "Coldre interno em kydex com retenção ajustável, destro.",
			Image:       "/img/products/coldre-kydex.jpg",
			Category:    constants.CategoryAccessories,
			Specifications: models.SpecMap{
				"material": "kydex",
			},
			Price:           models.NewMoneyFromDecimal(decimal.NewFromFloat(189.90)),
			DisplayLocation: constants.PlacementRecommended,
			SortOrder:       80,
		},
		{
			Name:        "Colete Modular Tático",
			Description: "Colete modular com sistema MOLLE, ajuste lateral, porta-placas frontal e dorsal.",
			Image:       "/img/products/colete-modular.jpg",
			Category:    constants.CategoryTactical,
			Specifications: models.SpecMap{
				"sistema": "MOLLE",
			},
			Price:           models.NewMoneyFromDecimal(decimal.NewFromFloat(749.00)),
			DisplayLocation: constants.PlacementTactical,
			SortOrder:       70,
		},
		{
			Name:        "Lanterna Tática 1200lm",
			Description: "Lanterna de cano com 1200 lúmens, acionamento remoto e strobe.",
			Image:       "/img/products/lanterna-tatica.jpg",
			Category:    constants.CategoryTactical,
			Specifications: models.SpecMap{
				"fluxo": "1200 lm",
			},
			Price:           models.NewMoneyFromDecimal(decimal.NewFromFloat(329.90)),
			DisplayLocation: constants.PlacementTactical,
			SortOrder:       65,
		},
		{
			Name:        "Protetor Auricular Eletrônico",
			Description: "Abafador eletrônico com amplificação ambiente e corte automático de impulso.",
			Image:       "/img/products/protetor-auricular.jpg",
			Category:    constants.CategorySport,
			Specifications: models.SpecMap{
				"nrr": "23 dB",
			},
			Price:           models.NewMoneyFromDecimal(decimal.NewFromFloat(459.90)),
			DisplayLocation: constants.PlacementSport,
			SortOrder:       60,
		},
		{
			Name:        "Óculos de Tiro Ambar",
			Description: "Óculos de proteção balística com lente âmbar, padrão ANSI Z87.1.",
			Image:       "/img/products/oculos-ambar.jpg",
			Category:    constants.CategorySport,
			Specifications: models.SpecMap{
				"lente": "âmbar",
			},
			Price:           models.NewMoneyFromDecimal(decimal.NewFromFloat(129.90)),
			DisplayLocation: constants.PlacementSport,
			SortOrder:       55,
		},
	}

	for _, prod := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Name)
			}
		} else {
			existing.Description = prod.Description
			existing.Image = prod.Image
			existing.Category = prod.Category
			existing.Specifications = prod.Specifications
			existing.Price = prod.Price
			existing.DisplayLocation = prod.DisplayLocation
			existing.SortOrder = prod.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Name)
			}
		}
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Printf("- %d product templates (zero price)\n", len(templates))
	fmt.Printf("- %d storefront products\n", len(products))
}
