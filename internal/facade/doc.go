// Package facade demonstrates the Facade pattern with an order checkout.
//
// Placing an order really takes three subsystems: inventory has to reserve
// stock, payments has to charge the card, shipping has to pick a rate.
// Checkout hides that choreography behind one PlaceOrder call that either
// returns a confirmed order or surfaces the first subsystem failure
// unchanged.
//
// A facade keeps callers decoupled from subsystem churn, at the risk of
// growing into a god object; this one stays a thin sequencing layer and the
// subsystems remain usable directly.
package facade
