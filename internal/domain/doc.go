// Package domain defines the entities that flow through the generation
// pipeline: the request handed to the model, the artifacts produced from
// its answer, and the owners those artifacts are attached to.
package domain
