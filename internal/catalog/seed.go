package catalog

// Default returns the canonical catalog definition shipped with the
// storefront. Prices here are placeholders pending the supplier price
// list; Reconcile treats them as plain input data.
func Default() []CategorySeed {
	return []CategorySeed{
		{
			Slug:        "detergent-cleaning",
			Name:        "Detergent & Cleaning Liquids",
			Description: "Bulk chlorine, antiseptic solutions, floor detergents, dishwashing liquids and hand soaps for kitchen hygiene protocols.",
			ImageURL:    "/static/images/category-detergent.svg",
			Items: []ProductSeed{
				{Subcategory: "Chlorine", Name: "Chlorine 4L", Unit: "Jerrycan 4L", Description: "Concentrated chlorine for dishwashing stations.", ImageURL: "/static/images/product-chlorine.svg"},
				{Subcategory: "Chlorine", Name: "Chlorine 10L", Unit: "Jerrycan 10L", Description: "Medium volume chlorine for daily cleaning.", ImageURL: "/static/images/product-chlorine.svg"},
				{Subcategory: "Chlorine", Name: "Chlorine 22L", Unit: "Jerrycan 22L", Description: "High capacity chlorine stock.", ImageURL: "/static/images/product-chlorine.svg"},
				{Subcategory: "Chlorine", Name: "Chlorine 30L", Unit: "Jerrycan 30L", Description: "Bulk chlorine for central kitchens.", ImageURL: "/static/images/product-chlorine.svg"},
				{Subcategory: "Antiseptic", Name: "Antiseptic 4L", Unit: "Jerrycan 4L", Description: "Ready-to-use antiseptic for food-prep surfaces.", ImageURL: "/static/images/product-antiseptic.svg"},
				{Subcategory: "Antiseptic", Name: "Antiseptic 10L", Unit: "Jerrycan 10L", Description: "Bulk supply for high-frequency sanitation.", ImageURL: "/static/images/product-antiseptic.svg"},
				{Subcategory: "Floor Detergent", Name: "Floor Detergent 4L", Unit: "Jerrycan 4L", Description: "Neutral floor cleaner for daily maintenance.", ImageURL: "/static/images/product-floor.svg"},
				{Subcategory: "Floor Detergent", Name: "Floor Detergent 10L", Unit: "Jerrycan 10L", Description: "High coverage floor detergent.", ImageURL: "/static/images/product-floor.svg"},
				{Subcategory: "Floor Detergent", Name: "Floor Detergent 22L", Unit: "Jerrycan 22L", Description: "Bulk floor detergent for large venues.", ImageURL: "/static/images/product-floor.svg"},
				{Subcategory: "Floor Detergent", Name: "Floor Detergent 30L", Unit: "Jerrycan 30L", Description: "Heavy-duty stock for facilities teams.", ImageURL: "/static/images/product-floor.svg"},
				{Subcategory: "Dishwashing", Name: "Dishwashing 4L", Unit: "Jerrycan 4L", Description: "Concentrated dishwashing liquid.", ImageURL: "/static/images/product-dish.svg"},
				{Subcategory: "Dishwashing", Name: "Dishwashing 10L", Unit: "Jerrycan 10L", Description: "Economical pack for dishwashing lines.", ImageURL: "/static/images/product-dish.svg"},
				{Subcategory: "Dishwashing", Name: "Dishwashing 22L", Unit: "Jerrycan 22L", Description: "Bulk supply for central dish rooms.", ImageURL: "/static/images/product-dish.svg"},
				{Subcategory: "Dishwashing", Name: "Dishwashing 30L", Unit: "Jerrycan 30L", Description: "Maximum volume dishwashing liquid.", ImageURL: "/static/images/product-dish.svg"},
				{Subcategory: "Hand Soap", Name: "Hand Soap 4L", Unit: "Jerrycan 4L", Description: "Fragrance-free formula suitable for kitchen teams.", ImageURL: "/static/images/product-hand-soap.svg"},
				{Subcategory: "Hand Soap", Name: "Hand Soap 10L", Unit: "Jerrycan 10L", Description: "High-volume refill for dispenser systems.", ImageURL: "/static/images/product-hand-soap.svg"},
			},
		},
		{
			Slug:        "food-packaging",
			Name:        "Food & Packaging Containers",
			Description: "Pizza boxes, plastic takeaway containers, salad bowls and kraft packaging for delivery and dine-out programs.",
			ImageURL:    "/static/images/category-packaging.svg",
			Items: []ProductSeed{
				{Subcategory: "Pizza Boxes", Name: "Pizza Box 20cm", Unit: "Bundle", Description: "Corrugated pizza box 20cm, vented.", ImageURL: "/static/images/product-pizza-box.svg"},
				{Subcategory: "Pizza Boxes", Name: "Pizza Box 30cm", Unit: "Bundle", Description: "Corrugated pizza box 30cm, vented.", ImageURL: "/static/images/product-pizza-box.svg"},
				{Subcategory: "Pizza Boxes", Name: "Pizza Box 35cm", Unit: "Bundle", Description: "Wide format pizza box 35cm.", ImageURL: "/static/images/product-pizza-box.svg"},
				{Subcategory: "Pizza Boxes", Name: "Pizza Box 40cm", Unit: "Bundle", Description: "XL pizza box 40cm for family portions.", ImageURL: "/static/images/product-pizza-box.svg"},
				{Subcategory: "Plastic Boxes", Name: "Plastic Box 100cc", Unit: "Carton", Description: "Microwave-safe PP box 100cc.", ImageURL: "/static/images/product-plastic-box.svg"},
				{Subcategory: "Plastic Boxes", Name: "Plastic Box 150cc", Unit: "Carton", Description: "Microwave-safe PP box 150cc.", ImageURL: "/static/images/product-plastic-box.svg"},
				{Subcategory: "Plastic Boxes", Name: "Plastic Box 375cc", Unit: "Carton", Description: "Microwave-safe PP box 375cc.", ImageURL: "/static/images/product-plastic-box.svg"},
				{Subcategory: "Plastic Boxes", Name: "Plastic Box 750cc", Unit: "Carton", Description: "Microwave-safe PP box 750cc.", ImageURL: "/static/images/product-plastic-box.svg"},
				{Subcategory: "Plastic Boxes", Name: "Plastic Box 1000cc", Unit: "Carton", Description: "Microwave-safe PP box 1000cc.", ImageURL: "/static/images/product-plastic-box.svg"},
				{Subcategory: "Plastic Boxes", Name: "Plastic Box 1500cc", Unit: "Carton", Description: "Microwave-safe PP box 1500cc.", ImageURL: "/static/images/product-plastic-box.svg"},
				{Subcategory: "Sandwich Wrappers", Name: "Sandwich Wrappers", Unit: "Bundle", Description: "Grease-resistant sandwich wrap sheets.", ImageURL: "/static/images/product-wrapper.svg"},
				{Subcategory: "Salad Bowls", Name: "Salad Bowls", Unit: "Carton", Description: "Clear salad bowls with lid.", ImageURL: "/static/images/product-salad-bowl.svg"},
				{Subcategory: "Kraft Bags", Name: "Kraft Bags", Unit: "Bundle", Description: "Sturdy kraft takeaway bags.", ImageURL: "/static/images/product-kraft-bag.svg"},
				{Subcategory: "Carton Plates", Name: "Carton Plates", Unit: "Bundle", Description: "Rigid carton plates for catering service.", ImageURL: "/static/images/product-carton-plate.svg"},
			},
		},
		{
			Slug:        "hygiene-safety",
			Name:        "Hygiene & Safety",
			Description: "Protective gloves, hair nets, sleeves and trash bags for front and back of house teams.",
			ImageURL:    "/static/images/category-hygiene.svg",
			Items: []ProductSeed{
				{Subcategory: "Gloves", Name: "Latex Gloves - Small (Blue)", Unit: "Box", Description: "Powder-free latex gloves, blue, size small.", ImageURL: "/static/images/product-gloves.svg"},
				{Subcategory: "Gloves", Name: "Latex Gloves - Medium (Blue)", Unit: "Box", Description: "Powder-free latex gloves, blue, size medium.", ImageURL: "/static/images/product-gloves.svg"},
				{Subcategory: "Gloves", Name: "Latex Gloves - Large (Blue)", Unit: "Box", Description: "Powder-free latex gloves, blue, size large.", ImageURL: "/static/images/product-gloves.svg"},
				{Subcategory: "Gloves", Name: "Latex Gloves - Small (Black)", Unit: "Box", Description: "Powder-free latex gloves, black, size small.", ImageURL: "/static/images/product-gloves.svg"},
				{Subcategory: "Gloves", Name: "Latex Gloves - Medium (Black)", Unit: "Box", Description: "Powder-free latex gloves, black, size medium.", ImageURL: "/static/images/product-gloves.svg"},
				{Subcategory: "Gloves", Name: "Latex Gloves - Large (Black)", Unit: "Box", Description: "Powder-free latex gloves, black, size large.", ImageURL: "/static/images/product-gloves.svg"},
				{Subcategory: "Hair Nets", Name: "Hair Nets (White)", Unit: "Pack", Description: "Breathable disposable hair nets, white.", ImageURL: "/static/images/product-hairnet.svg"},
				{Subcategory: "Hair Nets", Name: "Hair Nets (Black)", Unit: "Pack", Description: "Breathable disposable hair nets, black.", ImageURL: "/static/images/product-hairnet.svg"},
				{Subcategory: "Hand Sleeves", Name: "Hand Sleeves (White)", Unit: "Pack", Description: "Disposable hand sleeves, white.", ImageURL: "/static/images/product-sleeve.svg"},
				{Subcategory: "Hand Sleeves", Name: "Hand Sleeves (Black)", Unit: "Pack", Description: "Disposable hand sleeves, black.", ImageURL: "/static/images/product-sleeve.svg"},
				{Subcategory: "Trash Bags", Name: "Trash Bags - Small", Unit: "Roll", Description: "High-density small trash bags.", ImageURL: "/static/images/product-trash-bag.svg"},
				{Subcategory: "Trash Bags", Name: "Trash Bags - Medium", Unit: "Roll", Description: "High-density medium trash bags.", ImageURL: "/static/images/product-trash-bag.svg"},
				{Subcategory: "Trash Bags", Name: "Trash Bags - Large", Unit: "Roll", Description: "High-density large trash bags.", ImageURL: "/static/images/product-trash-bag.svg"},
				{Subcategory: "Trash Bags", Name: "Trash Bags - 85cm", Unit: "Roll", Description: "Extra-strong trash bags 85cm.", ImageURL: "/static/images/product-trash-bag.svg"},
				{Subcategory: "Trash Bags", Name: "Trash Bags - 110cm", Unit: "Roll", Description: "Extra-strong trash bags 110cm.", ImageURL: "/static/images/product-trash-bag.svg"},
				{Subcategory: "Trash Bags", Name: "Trash Bags - 125cm", Unit: "Roll", Description: "Extra-strong trash bags 125cm.", ImageURL: "/static/images/product-trash-bag.svg"},
			},
		},
		{
			Slug:        "cloths-wipes",
			Name:        "Microfiber Cloths & Wipes",
			Description: "Reusable microfiber cloths and disposable wipes for service stations.",
			ImageURL:    "/static/images/category-cloths.svg",
			Items: []ProductSeed{
				{Subcategory: "Microfiber Cloths", Name: "Microfiber Color-Coded Cloths", Unit: "Pack of 20", Description: "Color-coded cloths for HACCP separation.", ImageURL: "/static/images/product-microfiber.svg"},
				{Subcategory: "Wipes", Name: "Service Wipes", Unit: "Tub of 200", Description: "Disposable wipes for food contact surfaces.", ImageURL: "/static/images/product-wipes.svg"},
			},
		},
		{
			Slug:        "tissues-napkins",
			Name:        "Tissues & Napkins",
			Description: "Interfold napkins, toilet napkins and kitchen rolls stocked for dining rooms.",
			ImageURL:    "/static/images/category-tissues.svg",
			Items: []ProductSeed{
				{Subcategory: "Interfold Napkins", Name: "Interfold Napkins 2kg", Unit: "Pack", Description: "Food-service interfold napkins 2kg.", ImageURL: "/static/images/product-interfold.svg"},
				{Subcategory: "Interfold Napkins", Name: "Interfold Napkins 3kg", Unit: "Pack", Description: "Food-service interfold napkins 3kg.", ImageURL: "/static/images/product-interfold.svg"},
				{Subcategory: "Interfold Napkins", Name: "Interfold Napkins 4kg", Unit: "Pack", Description: "Food-service interfold napkins 4kg.", ImageURL: "/static/images/product-interfold.svg"},
				{Subcategory: "Toilet Napkins", Name: "Toilet Napkins (6 rolls)", Unit: "Pack", Description: "Soft-touch toilet napkins pack of 6 rolls.", ImageURL: "/static/images/product-toilet.svg"},
				{Subcategory: "Kitchen Napkins", Name: "Kitchen Napkins (6 rolls)", Unit: "Pack", Description: "Highly absorbent kitchen napkins pack of 6.", ImageURL: "/static/images/product-kitchen.svg"},
			},
		},
	}
}
