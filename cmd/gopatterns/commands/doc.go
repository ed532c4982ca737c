// Package commands defines the gopatterns CLI: one subcommand per design
// pattern, each running its example and printing a short transcript.
//
// Commands
//
//   - adapter     Charge a card through a legacy gateway adapter
//   - bridge      Render pages through interchangeable backends
//   - builder     Assemble cars step by step
//   - composite   Total a shipment of nested book boxes
//   - decorator   Push a value through a layered data source
//   - facade      Place an order through the checkout facade
//   - factory     Plan deliveries with transport factories
//   - singleton   Show the shared settings holder
//   - uikit       Render a form with themed widget families
//
// Transcripts go to the command's stdout so tests can capture them; the
// --verbose flag additionally streams store operation logs to stderr.
package commands
