// Package swcache implements the offline asset cache.
//
// It mirrors a browser service worker's lifecycle on disk: Install stages a
// complete generation of the application shell, Activate evicts every older
// generation in the faithdive- namespace, and Fetch answers asset requests
// cache-first with a background revalidation. Each cache generation lives in
// its own directory named after the app version, so two versions never share
// entries and rollback is a matter of activating a different generation.
package swcache
