// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven
// ports (adapters): the forum service turns listing requests into
// fetch paths and records, the settings service resolves configuration.
//
// Services are pure Go with no CGO or external dependencies.
package services
