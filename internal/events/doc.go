// Package events defines the notification events broadcast to real-time
// clients and the Publisher capability the service layer uses to emit them
// without owning the transport.
package events
