// Package qraccess issues and validates short-lived access codes that let a
// workshop write maintenance records for one vehicle without an account.
//
// A code is printed into a QR image handed to the workshop. Codes live in
// process memory only, expire after a fixed TTL and may be used any number of
// times until then. Expired codes are removed the first time validation sees
// them and by periodic sweeps.
package qraccess
