package duckdb

const (
	createVulnerableInputSequence       = `CREATE SEQUENCE IF NOT EXISTS vulnerable_input_id_seq START 1`
	createVulnerableTransactionSequence = `CREATE SEQUENCE IF NOT EXISTS vulnerable_transaction_id_seq START 1`
	createHijackTransactionSequence     = `CREATE SEQUENCE IF NOT EXISTS hijack_transaction_id_seq START 1`
	createHijackInputSpendSequence      = `CREATE SEQUENCE IF NOT EXISTS hijack_input_spend_id_seq START 1`

	createVulnerableInputTable = `
CREATE TABLE IF NOT EXISTS vulnerable_input (
	id                    BIGINT PRIMARY KEY DEFAULT nextval('vulnerable_input_id_seq'),
	prevout_txid          VARCHAR NOT NULL,
	prevout_index         UINTEGER NOT NULL,
	value                 BIGINT NOT NULL,
	first_seen_spend_txid VARCHAR NOT NULL,
	recorded_at           TIMESTAMP NOT NULL DEFAULT current_timestamp
)`

	createVulnerableInputPrevoutIndex = `
CREATE INDEX IF NOT EXISTS vulnerable_input_prevout_idx
	ON vulnerable_input (prevout_txid, prevout_index)`

	createVulnerableTransactionTable = `
CREATE TABLE IF NOT EXISTS vulnerable_transaction (
	id          BIGINT PRIMARY KEY DEFAULT nextval('vulnerable_transaction_id_seq'),
	txid        VARCHAR NOT NULL,
	value       BIGINT NOT NULL,
	vsize       BIGINT NOT NULL,
	fees        BIGINT NOT NULL,
	recorded_at TIMESTAMP NOT NULL DEFAULT current_timestamp
)`

	createHijackTransactionTable = `
CREATE TABLE IF NOT EXISTS hijack_transaction (
	id          BIGINT PRIMARY KEY DEFAULT nextval('hijack_transaction_id_seq'),
	txid        VARCHAR NOT NULL,
	value       BIGINT NOT NULL,
	vsize       BIGINT NOT NULL,
	fee         BIGINT NOT NULL,
	recorded_at TIMESTAMP NOT NULL DEFAULT current_timestamp
)`

	createHijackInputSpendTable = `
CREATE TABLE IF NOT EXISTS hijack_input_spend (
	id                    BIGINT PRIMARY KEY DEFAULT nextval('hijack_input_spend_id_seq'),
	vulnerable_input_id   BIGINT NOT NULL REFERENCES vulnerable_input (id),
	hijack_transaction_id BIGINT NOT NULL REFERENCES hijack_transaction (id)
)`
)

var schema = []string{
	createVulnerableInputSequence,
	createVulnerableTransactionSequence,
	createHijackTransactionSequence,
	createHijackInputSpendSequence,
	createVulnerableInputTable,
	createVulnerableInputPrevoutIndex,
	createVulnerableTransactionTable,
	createHijackTransactionTable,
	createHijackInputSpendTable,
}
