// Package dispatch implements the welcome-notification engine.
//
// The service layer owns the intake → upsert → compose → send → reconcile
// sequence and the effectively-once send guarantee. It depends on the
// Repository, Composer, and Transport contracts defined in this package and
// never imports from api/.
//
// Repository implementations live in repository/postgres/; the production
// Composer and Transport live in mailer/.
package dispatch
