/*
Package profile loads named scan configurations from YAML and compiles them
into ScanFilterSpec values.

A profile document looks like:

	profiles:
	  active-devices:
	    limit: 25
	    totalSegments: 4
	    conditionalOperator: AND
	    filters:
	      Status:
	        operator: EQ
	        values: ["ACTIVE"]
	      Platform:
	        operator: IN
	        values: ["APNS", "GCM"]

Compilation is intentionally shallow: unknown operators and missing operands
fail immediately, while cross-field consistency (segment range, operator
applicability) is left to the executor, the same as for hand-built specs.
*/
package profile
