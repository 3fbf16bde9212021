// Package events provides types and interfaces for content change notification.
//
// The content watcher emits an event for every relevant filesystem change and
// does not know which components react to it. Handlers registered with an
// emitter decide what to do, for example reloading the catalog snapshot.
//
// The primary components are:
// - ContentChangedEvent: describes a single change to a content file
// - EventHandler: interface for components that can handle events
// - EventEmitter: interface for components that can emit events
package events
