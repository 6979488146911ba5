package main

import (
	"flag"
	"fmt"
	"os"

	"storefront-backend/internal/config"
	"storefront-backend/internal/database"
	"storefront-backend/internal/models"
)

// configure-pickup seeds or updates the operator pickup address used as
// the origin for shipping-fee quotes.
func main() {
	province := flag.String("province", "", "Pickup province (required)")
	district := flag.String("district", "", "Pickup district (required)")
	ward := flag.String("ward", "", "Pickup ward")
	address := flag.String("address", "", "Pickup street address")
	transport := flag.String("transport", "", "Default transport mode (road|air)")
	delivery := flag.String("delivery", "", "Default delivery option (none|expedited)")
	flag.Parse()

	if *province == "" || *district == "" {
		fmt.Fprintln(os.Stderr, "Both -province and -district are required")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	settingsQueries := database.NewSettingsQueries(db)
	req := &models.ShippingSettingsRequest{
		PickupProvince: *province,
		PickupDistrict: *district,
		PickupWard:     *ward,
		PickupAddress:  *address,
		TransportMode:  *transport,
		DeliveryOption: *delivery,
	}
	if err := settingsQueries.UpdateShippingSettings(req); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to update shipping settings: %v\n", err)
		os.Exit(1)
	}

	settings, err := settingsQueries.GetShippingSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to reload shipping settings: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Shipping settings updated:")
	fmt.Printf("  Pickup:    %s, %s", settings.PickupDistrict, settings.PickupProvince)
	if settings.PickupWard != "" {
		fmt.Printf(" (%s)", settings.PickupWard)
	}
	fmt.Println()
	if settings.PickupAddress != "" {
		fmt.Printf("  Address:   %s\n", settings.PickupAddress)
	}
	fmt.Printf("  Transport: %s\n", settings.TransportMode)
	fmt.Printf("  Delivery:  %s\n", settings.DeliveryOption)
}
