// Package domain contains the core entities of the moderation workflow:
// incidences, the reports attached to them, and the narrow views of
// publications and users the workflow reads. The types carry no
// infrastructure concerns so they can be shared by storage, service and
// transport packages.
package domain
