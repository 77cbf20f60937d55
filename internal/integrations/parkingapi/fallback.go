package parkingapi

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

const fallbackImage = "https://images.unsplash.com/photo-1573348722427-f1d6819fdf98?ixlib=rb-4.0.3"

// LocalUser пользователь локальной таблицы для логина без API
type LocalUser struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// localAccount пользователь локальной таблицы с bcrypt-хешем пароля
type localAccount struct {
	LocalUser
	hash []byte
}

// hashLocalUsers хеширует пароли; пользователь с нехешируемым паролем пропускается
func hashLocalUsers(users []LocalUser, log Logger) []localAccount {
	accounts := make([]localAccount, 0, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.MinCost)
		if err != nil {
			log.Error("NewClient: local user %s skipped: %v", u.Email, err)
			continue
		}
		u.Password = ""
		accounts = append(accounts, localAccount{LocalUser: u, hash: hash})
	}
	return accounts
}

// DefaultLocalUsers локальная таблица пользователей
func DefaultLocalUsers() []LocalUser {
	return []LocalUser{
		{ID: "1", Name: "Admin User", Email: "salamjeanlouis8@gmail.com", Password: "azertyui", Role: domain.RoleAdmin},
		{ID: "2", Name: "John Doe", Email: "john@example.com", Password: "user123", Role: domain.RoleUser},
	}
}

// DefaultFallbackParkings резервный набор парковок на случай недоступности API
func DefaultFallbackParkings() []domain.Parking {
	return []domain.Parking{
		fallbackParking("1", "Parking Central", "123 Rue de la Paix, 75001 Paris", 200, 45, 3.50,
			"Parking sécurisé au centre-ville avec accès 24/7",
			[]string{"Surveillance 24/7", "Éclairage LED", "Accès handicapé"}, "24h/24, 7j/7"),
		fallbackParking("2", "Parking Gare Nord", "45 Avenue des Voyageurs, 75010 Paris", 150, 30, 4.00,
			"Parking à proximité de la gare du Nord",
			[]string{"Surveillance 24/7", "Station de recharge électrique", "Service de lavage"}, "24h/24, 7j/7"),
		fallbackParking("3", "Parking Shopping Mall", "78 Boulevard Commercial, 75008 Paris", 300, 120, 2.50,
			"Grand parking du centre commercial",
			[]string{"Surveillance 24/7", "Ascenseurs", "Accès direct au centre commercial"}, "8h-22h, 7j/7"),
		fallbackParking("4", "Parking Résidentiel", "15 Rue des Lilas, 75020 Paris", 50, 10, 2.00,
			"Parking résidentiel sécurisé",
			[]string{"Surveillance 24/7", "Accès par badge", "Emplacements réservés"}, "24h/24, 7j/7"),
		fallbackParking("5", "Parking Aéroport", "Aéroport Charles de Gaulle, Terminal 2, 95700 Roissy", 500, 200, 5.00,
			"Parking de l'aéroport avec navette gratuite",
			[]string{"Surveillance 24/7", "Navette gratuite", "Service de valet"}, "24h/24, 7j/7"),
	}
}

func fallbackParking(id, name, address string, total, available int, price float64,
	description string, services []string, openingHours string) domain.Parking {
	image := fallbackImage
	return domain.Parking{
		ID:             id,
		Name:           name,
		Address:        address,
		TotalSpots:     total,
		AvailableSpots: available,
		PricePerHour:   price,
		Image:          &image,
		IsActive:       true,
		Description:    description,
		Services:       services,
		OpeningHours:   openingHours,
	}
}

// cloneParkings глубокая копия, чтобы вызывающий код не испортил резервный набор
func cloneParkings(src []domain.Parking) []domain.Parking {
	out := make([]domain.Parking, len(src))
	for i, p := range src {
		out[i] = cloneParking(p)
	}
	return out
}

func cloneParking(p domain.Parking) domain.Parking {
	if p.Image != nil {
		image := *p.Image
		p.Image = &image
	}
	p.Services = append([]string(nil), p.Services...)
	return p
}
