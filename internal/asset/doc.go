// Package asset resolves cards to images kept in a Google Drive folder.
//
// FileName derives the remote file name from a card, a Locator turns that
// name into a Drive file id (caching hits and misses for the life of the
// process) and an Acquirer downloads the image, rotating it for reversed
// cards.
package asset
