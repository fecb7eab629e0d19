// Package header names the custom request headers the frontend sends.
package header

// Confirm must be "true" on requests that delete data. The confirmation
// dialog sets it once the user agrees.
const Confirm = "X-Dpm-Confirm"
