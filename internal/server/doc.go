// Package server runs the local mock services over HTTP.
//
//	┌───────────────────────────────────────────┐
//	│           HTTP Server (gin)               │
//	├───────────────────────────────────────────┤
//	│  Middleware                               │
//	│    ginzap.Ginzap          ("http" logger) │
//	│    ginzap.RecoveryWithZap                 │
//	├───────────────────────────────────────────┤
//	│  Router (/api/v1)                         │
//	│    handlers.RegisterHandlers              │
//	├───────────────────────────────────────────┤
//	│  NoRoute → 404 v1.ErrorResponse           │
//	└───────────────────────────────────────────┘
//
// # Lifecycle
//
//	srv, err := server.NewServer("127.0.0.1:0", func(router *gin.RouterGroup) {
//	    handlers.RegisterHandlers(router, h)
//	})
//	go srv.Start(ctx)   // blocks until Stop or ctx done
//	...
//	srv.Stop(ctx)       // graceful shutdown
//
// NewServer binds the listener immediately, so srv.URL() is valid before
// Start and ports chosen by the kernel (":0") can be handed to the suite.
package server
