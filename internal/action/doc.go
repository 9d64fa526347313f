// Package action selects and runs the single bookmark operation requested
// by one invocation: Save, Show, Delete, List, RemoveDatabase, Help or Pick.
//
// Every mutating action loads the whole store, changes it in memory and
// rewrites the whole store. Load and save are independent open/close cycles
// with no locking between them.
package action
