// Package registry collects route declarations made next to controller code
// and binds them, once, onto a chi router.
//
// Controllers register themselves from an init function of the package that
// declares them:
//
//	func init() {
//	    controllers.Register("docente", "/docente", newDocenteController,
//	        registry.Route("/{docenteId}", "getDocente"),
//	    )
//	}
//
// At start-up the application calls [Registry.Bind] exactly once. Bind
// validates the whole table, mounting it on a scratch router first, before
// touching the real router. It fails with a [*StartupConfigurationError] when
// any registration is malformed, when chi rejects a pattern or when two
// routes collide on the same method and full path. After a successful Bind
// the registry is frozen and further registrations are rejected.
package registry
