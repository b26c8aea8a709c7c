// Package watcher monitors a directory for newly arrived JSON files.
//
// It wraps fsnotify and emits the path of each created file on a
// channel, throttled by a token bucket so a burst of dropped files
// does not trigger a burst of pipeline runs.
package watcher
