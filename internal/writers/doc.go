// Package writers classifies failures of writes to the process streams.
//
// Nothing here retries or reports; callers use the classification to label
// what happened and then carry on.
package writers
