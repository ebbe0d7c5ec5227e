// Package accounts owns the ordered list of account profiles for a running
// session and mirrors it into a key/value store.
//
// The list is loaded once when the Service is built and written back in full
// after every mutation. Readers get deep-copied snapshots; writes go through
// AddAccount, UpdateAccount and RemoveAccount only.
package accounts
