// Package factory demonstrates the Factory Method pattern with delivery
// planning.
//
// PlanDelivery is the template: it books whatever Transport its planner
// creates and formats the manifest, never naming a concrete vehicle. Each
// planner (RoadPlanner, SeaPlanner) overrides only the creation step. Adding
// air freight means one new planner and one new product — the template stays
// untouched.
//
// Factory Method isolates the "which concrete type" decision in one place;
// the cost is a parallel hierarchy of creators shadowing the products.
package factory
