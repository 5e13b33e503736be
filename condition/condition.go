/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package condition compiles expr-lang filter expressions evaluated against
// transactions before they enter the mining engine. The expression sees two
// variables: "timestamp" (int64) and "items" (the transaction's item slice),
// e.g. `timestamp > 5 && "a" in items`.
package condition

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Condition decides whether a transaction participates in the mining run.
type Condition interface {
	Evaluate(env interface{}) bool
}

// ExprCondition is a Condition backed by a compiled expr-lang program.
type ExprCondition struct {
	program *vm.Program
}

// New compiles the given boolean expression.
func New(expression string) (Condition, error) {
	options := []expr.Option{
		expr.Function("ts_between", func(params ...any) (any, error) {
			if len(params) != 3 {
				return false, fmt.Errorf("ts_between requires 3 parameters")
			}
			ts, ok1 := toInt64(params[0])
			lo, ok2 := toInt64(params[1])
			hi, ok3 := toInt64(params[2])
			if !ok1 || !ok2 || !ok3 {
				return false, fmt.Errorf("ts_between requires integer parameters")
			}
			return ts >= lo && ts <= hi, nil
		}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, err
	}
	return &ExprCondition{program: program}, nil
}

// Evaluate runs the program against the environment. Runtime failures count
// as a non-match rather than an error, the transaction is simply skipped.
func (ec *ExprCondition) Evaluate(env interface{}) bool {
	result, err := expr.Run(ec.program, env)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

// Env builds the expression environment for one transaction.
func Env(timestamp int64, items []interface{}) map[string]interface{} {
	return map[string]interface{}{
		"timestamp": timestamp,
		"items":     items,
	}
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case float64:
		return int64(x), true
	default:
		return 0, false
	}
}
