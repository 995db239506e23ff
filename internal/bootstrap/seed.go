// Package bootstrap populates an empty installation with the demo catalog,
// inventory, suppliers, and the admin account.
package bootstrap

import (
	"context"

	"lavapos/internal/model"
	"lavapos/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Deps are the repositories Seed writes through, so seeding works the same on
// both backends.
type Deps struct {
	Users     repository.UserRepository
	Services  repository.WashServiceRepository
	Inventory repository.InventoryRepository
	Suppliers repository.SupplierRepository
}

// Seed is idempotent per entity collection: it skips any collection that
// already has rows, so re-running against a live database changes nothing.
func Seed(ctx context.Context, deps Deps, adminUsername, adminPassword string) error {
	if err := seedAdmin(ctx, deps.Users, adminUsername, adminPassword); err != nil {
		return err
	}
	if err := seedServices(ctx, deps.Services); err != nil {
		return err
	}
	if err := seedInventory(ctx, deps.Inventory); err != nil {
		return err
	}
	return seedSuppliers(ctx, deps.Suppliers)
}

func seedAdmin(ctx context.Context, users repository.UserRepository, username, password string) error {
	if _, err := users.FindByUsername(ctx, username); err == nil {
		log.Info().Str("username", username).Msg("admin ya existe, seed omitido")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return users.Create(ctx, &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         "admin",
	})
}

func seedServices(ctx context.Context, repo repository.WashServiceRepository) error {
	existing, err := repo.List(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	// Precios en Lempiras
	services := []model.WashService{
		{Name: "Lavado Básico", Description: ptr("Lavado exterior básico"), Price: dec("150.00"), EstimatedMinutes: 30, IsActive: true},
		{Name: "Lavado Premium", Description: ptr("Lavado completo + encerado + aspirado"), Price: dec("280.00"), EstimatedMinutes: 45, IsActive: true},
		{Name: "Limpieza Interior", Description: ptr("Aspirado + limpieza tapicería"), Price: dec("120.00"), EstimatedMinutes: 20, IsActive: true},
		{Name: "Encerado", Description: ptr("Aplicación de cera protectora"), Price: dec("200.00"), EstimatedMinutes: 25, IsActive: true},
		{Name: "Lavado Completo", Description: ptr("Servicio completo interior y exterior"), Price: dec("350.00"), EstimatedMinutes: 65, IsActive: true},
	}
	for i := range services {
		if err := repo.Create(ctx, &services[i]); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(services)).Msg("catalogo de servicios sembrado")
	return nil
}

func seedInventory(ctx context.Context, repo repository.InventoryRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	items := []model.InventoryItem{
		{Name: "Champú Premium", Description: ptr("Champú para lavado de vehículos"), CurrentStock: dec("24.00"), MinStock: dec("10.00"), Unit: "L", CostPerUnit: dec("210.00")},
		{Name: "Cera Líquida", Description: ptr("Cera protectora líquida"), CurrentStock: dec("8.00"), MinStock: dec("12.00"), Unit: "L", CostPerUnit: dec("370.00")},
		{Name: "Desengrasante", Description: ptr("Producto para eliminar grasa"), CurrentStock: dec("2.00"), MinStock: dec("8.00"), Unit: "L", CostPerUnit: dec("295.00")},
		{Name: "Toallas Microfibra", Description: ptr("Toallas de microfibra para secado"), CurrentStock: dec("45.00"), MinStock: dec("20.00"), Unit: "und", CostPerUnit: dec("85.00")},
		{Name: "Aspiradora Industrial", Description: ptr("Equipo de aspirado industrial"), CurrentStock: dec("3.00"), MinStock: dec("2.00"), Unit: "und", CostPerUnit: dec("11000.00")},
	}
	for i := range items {
		if err := repo.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(items)).Msg("inventario sembrado")
	return nil
}

func seedSuppliers(ctx context.Context, repo repository.SupplierRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	suppliers := []model.Supplier{
		{Name: "Distribuidora Central", Contact: ptr("Carlos Mejía"), Phone: ptr("9988-7766"), Email: ptr("ventas@distribuidoracentral.hn"), Address: ptr("San Pedro Sula, Cortés")},
		{Name: "Productos de Limpieza HN", Contact: ptr("María González"), Phone: ptr("9755-4433"), Email: ptr("info@limpiezahn.com"), Address: ptr("Tegucigalpa, Francisco Morazán")},
		{Name: "Equipos Industriales del Norte", Contact: ptr("Roberto Fernández"), Phone: ptr("9611-2299"), Email: ptr("equipos@industrialnorte.hn"), Address: ptr("Choloma, Cortés")},
	}
	for i := range suppliers {
		if err := repo.Create(ctx, &suppliers[i]); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(suppliers)).Msg("proveedores sembrados")
	return nil
}

func ptr(s string) *string { return &s }

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}
