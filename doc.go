// Package main provides the entry point for the PuppyVill back-office service.
// It initializes and runs a web server using the Fiber framework that serves
// the daycare's content entities (programs, schedule, gallery, prices, and so
// on) and admission inquiries through a JSON REST API. All content is held in
// an in-memory store seeded with demo records at startup.
package main
