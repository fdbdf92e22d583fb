// Package ai defines the interface to the external language-model
// collaborator and its request/response models. The recommendation engine
// only depends on [Provider]; concrete transports live in subpackages.
package ai
