package catalog

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/anvilforge/storefront/internal/domain/model"
)

// SystemPrice is the base price plus the cost of each selected upgrade.
// Selection maps a category to the chosen upgrade id; unknown categories or
// option ids contribute nothing.
func SystemPrice(sys model.System, selection map[string]string) decimal.Decimal {
	price := sys.BasePrice
	for category, optionID := range selection {
		for _, upgrade := range sys.Upgrades[category] {
			if upgrade.ID == optionID {
				price = price.Add(upgrade.UpgradeCost)
				break
			}
		}
	}
	return price
}

// BuildPrice sums the component prices of a custom build.
func BuildPrice(parts map[string]model.Component) decimal.Decimal {
	total := decimal.Zero
	for _, component := range parts {
		total = total.Add(component.Price)
	}
	return total
}

// BuildCartItem synthesizes a cart line for a custom build: a one-off id, a
// snapshot of the part names as specs, and the selected part ids as the
// customizations identity key.
func BuildCartItem(parts map[string]model.Component) model.CartItem {
	specs := make(map[string]any, len(parts))
	customizations := make(model.Customizations, len(parts))
	for category, component := range parts {
		specs[category] = component.Name
		customizations[category] = component.ID
	}
	return model.CartItem{
		ID:             "custom-build-" + ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()).String(),
		Kind:           model.ItemKindSystem,
		Name:           "Custom Build",
		Specs:          specs,
		UnitPrice:      BuildPrice(parts),
		Quantity:       1,
		Customizations: customizations,
	}
}
