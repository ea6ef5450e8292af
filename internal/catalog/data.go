package catalog

import "github.com/velora-motors/storefront-backend/pkg/enums"

// Compiled-in showroom inventory. The storefront is a demo; there is no
// inventory service behind this table and the cart/checkout contracts do
// not depend on where it comes from.
var vehicles = []Vehicle{
	{
		ID:        "astra-electric",
		Name:      "Astra Electric",
		BasePrice: 45000,
		Year:      2024,
		Image:     "/images/astra-electric.jpg",
		Category:  enums.VehicleCategorySedan,
		Specs: SpecBlock{
			RangeKM:         500,
			PowerKW:         250,
			AccelerationSec: 6.2,
			Seats:           5,
			Transmission:    "Automatic",
		},
		Description: "Experience the future with our fully electric Astra. Perfect for eco-conscious drivers who refuse to compromise on performance.",
	},
	{
		ID:        "grandland-x",
		Name:      "Grandland X",
		BasePrice: 52000,
		Year:      2024,
		Image:     "/images/grandland-x.jpg",
		Category:  enums.VehicleCategorySUV,
		Specs: SpecBlock{
			RangeKM:         650,
			PowerKW:         280,
			AccelerationSec: 5.8,
			Seats:           5,
			Transmission:    "Automatic",
		},
		Description: "The ultimate SUV combining luxury and performance. AWD technology ensures confidence on any road.",
	},
	{
		ID:        "mokka-e",
		Name:      "Mokka E",
		BasePrice: 38000,
		Year:      2024,
		Image:     "/images/mokka-e.webp",
		Category:  enums.VehicleCategoryCompactSUV,
		Specs: SpecBlock{
			RangeKM:         400,
			PowerKW:         200,
			AccelerationSec: 7.1,
			Seats:           5,
			Transmission:    "Automatic",
		},
		Description: "Agile, efficient, and stylish. The perfect city companion with premium features throughout.",
	},
	{
		ID:        "insignia",
		Name:      "Insignia",
		BasePrice: 65000,
		Year:      2024,
		Image:     "/images/insignia.jpg",
		Category:  enums.VehicleCategoryExecutive,
		Specs: SpecBlock{
			RangeKM:         800,
			PowerKW:         310,
			AccelerationSec: 5.3,
			Seats:           5,
			Transmission:    "Automatic",
		},
		Description: "Executive elegance redefined. Twin turbocharged power meets sophisticated design.",
	},
	{
		ID:        "corsa-se",
		Name:      "Corsa SE",
		BasePrice: 32000,
		Year:      2024,
		Image:     "/images/corsa-se.jpeg",
		Category:  enums.VehicleCategoryCompact,
		Specs: SpecBlock{
			RangeKM:         350,
			PowerKW:         180,
			AccelerationSec: 7.5,
			Seats:           5,
			Transmission:    "Automatic",
		},
		Description: "Sporty and fun. Great value for budget-conscious buyers who still want premium quality.",
	},
	{
		ID:        "omega-gt",
		Name:      "Omega GT",
		BasePrice: 78000,
		Year:      2024,
		Image:     "/images/omega-gt.webp",
		Category:  enums.VehicleCategoryLuxury,
		Specs: SpecBlock{
			RangeKM:         900,
			PowerKW:         400,
			AccelerationSec: 4.2,
			Seats:           5,
			Transmission:    "Automatic",
		},
		Description: "The pinnacle of Velora engineering. Superb performance and luxury for the discerning driver.",
	},
}

var exteriorColors = []ColorOption{
	{Name: "Midnight Black", Hex: "#000000"},
	{Name: "Pearl White", Hex: "#F5F5F5"},
	{Name: "Electric Blue", Hex: "#0066FF"},
	{Name: "Metallic Silver", Hex: "#C0C0C0"},
}

var interiorPackages = []InteriorOption{
	{Name: "Standard Fabric", PriceDelta: 0},
	{Name: "Premium Leather", PriceDelta: 3000},
	{Name: "Luxury Leather Plus", PriceDelta: 6000},
}

var featuredSlides = []FeaturedSlide{
	{
		VehicleID: "astra-electric",
		Name:      "Velora Astra Electric",
		Year:      2024,
		Price:     45000,
		Image:     "/images/astra-electric.jpg",
		Badge:     "NEW",
		Headline:  "0-100 in 6.2s",
	},
	{
		VehicleID: "grandland-x",
		Name:      "Velora Grandland X",
		Year:      2024,
		Price:     52000,
		Image:     "/images/grandland-x.jpg",
		Badge:     "FEATURED",
		Headline:  "AWD Performance",
	},
	{
		VehicleID: "mokka-e",
		Name:      "Velora Mokka E",
		Year:      2024,
		Price:     38000,
		Image:     "/images/mokka-e.webp",
		Badge:     "POPULAR",
		Headline:  "500km Range",
	},
	{
		VehicleID: "insignia",
		Name:      "Velora Insignia",
		Year:      2024,
		Price:     65000,
		Image:     "/images/insignia.jpg",
		Badge:     "LUXURY",
		Headline:  "Twin Turbo",
	},
}
