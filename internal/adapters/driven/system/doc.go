// Package system adapts desktop facilities: the default web browser and
// the system clipboard.
package system
