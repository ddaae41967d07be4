// Package domain contains the entities shared by the lint service: users,
// persisted analyses and the pylint reports attached to them. The types carry
// no infrastructure concerns so storage, transport and workers can all use them.
package domain
