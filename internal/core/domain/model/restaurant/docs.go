// Package restaurant contains the catalog side of the domain: restaurants,
// their menus, and the customizations and options a menu offers.
//
// The catalog is reference data from the ordering flow's point of view.
// Orders validate their selections against it and bake the resulting prices
// into the order total, but never modify it.
//
// Key components:
//   - Restaurant: a merchant-owned storefront
//   - Menu: a priced dish offered by one restaurant
//   - Customization: a named group of options on a menu, possibly required
//     or limited to a single selection
//   - Option: one selectable choice within a customization, with an
//     optional extra price
package restaurant
