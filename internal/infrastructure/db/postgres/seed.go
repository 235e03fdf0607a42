package postgres

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/solestore/storefront-api/internal/core/domain"
)

// Seed populates the database with the demo accounts, categories, and
// products used for local development. Users and categories are upserted
// by their natural keys; products are only inserted into an empty catalog,
// so running the seed twice does not duplicate them.
func Seed(ctx context.Context, db *gorm.DB) error {
	if err := seedUser(ctx, db, "admin@example.com", "admin123", "Administrador", domain.RoleAdmin); err != nil {
		return err
	}
	if err := seedUser(ctx, db, "user@example.com", "user123", "Usuario de Prueba", domain.RoleUser); err != nil {
		return err
	}

	categories := map[string]uint{}
	for _, c := range []categoryRecord{
		{Name: "Deportivos", Slug: "deportivos", Description: "Zapatos deportivos para running, entrenamiento y actividades físicas"},
		{Name: "Casuales", Slug: "casuales", Description: "Zapatos casuales para el día a día"},
		{Name: "Formales", Slug: "formales", Description: "Zapatos formales para ocasiones especiales"},
		{Name: "Botas", Slug: "botas", Description: "Botas para todas las estaciones"},
	} {
		record := c
		if err := db.WithContext(ctx).
			Where(categoryRecord{Slug: c.Slug}).
			FirstOrCreate(&record).Error; err != nil {
			return fmt.Errorf("seed category %s: %w", c.Slug, err)
		}
		categories[record.Slug] = record.ID
	}

	var productCount int64
	if err := db.WithContext(ctx).Model(&productRecord{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if productCount > 0 {
		return nil
	}

	products := []productRecord{
		{
			Name:        "Zapatillas Running Pro",
			Description: "Zapatillas de running de alta calidad con tecnología de amortiguación avanzada. Perfectas para corredores que buscan máximo rendimiento y comodidad.",
			Price:       89.99,
			Images:      []string{"/products/running-1.jpg", "/products/running-2.jpg"},
			Stock:       50,
			Sizes:       []string{"38", "39", "40", "41", "42", "43", "44"},
			CategoryID:  categories["deportivos"],
		},
		{
			Name:        "Zapatillas Casual Urban",
			Description: "Zapatillas casuales con diseño moderno y cómodas para el uso diario. Ideales para caminar por la ciudad.",
			Price:       59.99,
			Images:      []string{"/products/casual-1.jpg", "/products/casual-2.jpg"},
			Stock:       75,
			Sizes:       []string{"36", "37", "38", "39", "40", "41", "42", "43"},
			CategoryID:  categories["casuales"],
		},
		{
			Name:        "Zapatos Oxford Clásicos",
			Description: "Zapatos formales de cuero genuino con estilo clásico. Perfectos para ocasiones formales y de negocios.",
			Price:       129.99,
			Images:      []string{"/products/formal-1.jpg", "/products/formal-2.jpg"},
			Stock:       30,
			Sizes:       []string{"39", "40", "41", "42", "43", "44", "45"},
			CategoryID:  categories["formales"],
		},
		{
			Name:        "Botas de Cuero Marrón",
			Description: "Botas elegantes de cuero marrón con suela antideslizante. Ideales para el otoño e invierno.",
			Price:       149.99,
			Images:      []string{"/products/botas-1.jpg", "/products/botas-2.jpg"},
			Stock:       25,
			Sizes:       []string{"39", "40", "41", "42", "43", "44"},
			CategoryID:  categories["botas"],
		},
		{
			Name:        "Zapatillas Deportivas Air",
			Description: "Zapatillas deportivas con tecnología de aire para máxima comodidad. Perfectas para entrenamientos intensos.",
			Price:       99.99,
			Images:      []string{"/products/sport-1.jpg", "/products/sport-2.jpg"},
			Stock:       60,
			Sizes:       []string{"38", "39", "40", "41", "42", "43", "44", "45"},
			CategoryID:  categories["deportivos"],
		},
		{
			Name:        "Zapatos Derby Negros",
			Description: "Zapatos Derby de cuero negro con acabado brillante. Elegantes y versátiles para cualquier ocasión formal.",
			Price:       119.99,
			Images:      []string{"/products/derby-1.jpg", "/products/derby-2.jpg"},
			Stock:       40,
			Sizes:       []string{"39", "40", "41", "42", "43", "44"},
			CategoryID:  categories["formales"],
		},
	}
	if err := db.WithContext(ctx).Create(&products).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

func seedUser(ctx context.Context, db *gorm.DB, email, password, name, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed user %s: %w", email, err)
	}
	record := userRecord{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.WithContext(ctx).
		Where(userRecord{Email: email}).
		FirstOrCreate(&record).Error; err != nil {
		return fmt.Errorf("seed user %s: %w", email, err)
	}
	return nil
}
