// Package bqm converts a model into the binary quadratic model handed to
// samplers: a variable type, a linear map, a quadratic map and an offset.
//
// BQM.Energy is an evaluator independent of the model's matrix arithmetic:
// it sums the sparse terms directly. model.Model.Energy must agree with it
// integer-for-integer, which makes a BQM the reference for validating the
// samples a solver returns.
//
// BQMs serialise to JSON (goccy/go-json) and YAML (gopkg.in/yaml.v3) in a
// deterministic wire form with terms sorted by variable index.
package bqm
