package database

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lanzar/internal/catalog"
	"lanzar/internal/domain"
)

// Seed writes the published catalog into the database. Entries are upserted by
// key so reseeding picks up edited content, and catalog entries no longer
// published are removed. Financial statements are only added or updated.
func Seed(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		services := append([]domain.Service(nil), catalog.Services...)
		ids := make([]string, len(services))
		for i := range services {
			services[i].Position = i
			ids[i] = services[i].ID
		}
		if err := upsertByID(tx, &services, &domain.Service{}, ids); err != nil {
			return fmt.Errorf("services: %w", err)
		}

		tiers := append([]domain.PricingTier(nil), catalog.PricingTiers...)
		ids = make([]string, len(tiers))
		for i := range tiers {
			tiers[i].Position = i
			ids[i] = tiers[i].ID
		}
		if err := upsertByID(tx, &tiers, &domain.PricingTier{}, ids); err != nil {
			return fmt.Errorf("pricing tiers: %w", err)
		}

		products := append([]domain.Product(nil), catalog.Products...)
		ids = make([]string, len(products))
		for i := range products {
			products[i].Position = i
			ids[i] = products[i].ID
		}
		if err := upsertByID(tx, &products, &domain.Product{}, ids); err != nil {
			return fmt.Errorf("products: %w", err)
		}

		frameworks := append([]domain.ComplianceFramework(nil), catalog.Frameworks...)
		ids = make([]string, len(frameworks))
		for i := range frameworks {
			frameworks[i].Position = i
			ids[i] = frameworks[i].ID
		}
		if err := upsertByID(tx, &frameworks, &domain.ComplianceFramework{}, ids); err != nil {
			return fmt.Errorf("compliance frameworks: %w", err)
		}

		statements := append([]domain.FinancialStatement(nil), catalog.Statements...)
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "year"}, {Name: "quarter"}, {Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "document_url", "updated_at"}),
		}).Create(&statements).Error
		if err != nil {
			return fmt.Errorf("financial statements: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	log.Printf("[DB] Catalog seeded: %d services, %d pricing tiers, %d products, %d frameworks, %d statements",
		len(catalog.Services), len(catalog.PricingTiers), len(catalog.Products), len(catalog.Frameworks), len(catalog.Statements))
	return nil
}

// upsertByID inserts or replaces rows keyed by their string id, then deletes
// rows of the same model whose id is not in ids
func upsertByID(tx *gorm.DB, rows any, model any, ids []string) error {
	if len(ids) == 0 {
		return tx.Where("1 = 1").Delete(model).Error
	}
	if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(rows).Error; err != nil {
		return err
	}
	return tx.Where("id NOT IN ?", ids).Delete(model).Error
}
