package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/models"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// Backend is the part of an Ethereum client the adapter needs.
// Both *ethclient.Client and the in-process simulated client satisfy it.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// gasMarginPercent is added on top of estimates so small state drift between
// estimation and inclusion doesn't run the transaction out of gas
const gasMarginPercent = 20

// Client implements usecase.ChainClient. Transactions are signed locally with
// the signer's key and sent one at a time.
type Client struct {
	backend Backend
	chainID *big.Int
	commit  func() // mines pending transactions on simulated chains
	close   func()
	log     *slog.Logger
}

// NewClient wraps a backend. commit may be nil for chains that mine on their own.
func NewClient(backend Backend, chainID *big.Int, commit, closeFn func(), log *slog.Logger) *Client {
	return &Client{
		backend: backend,
		chainID: chainID,
		commit:  commit,
		close:   closeFn,
		log:     log,
	}
}

// ChainID returns the chain id the client signs for
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	return c.chainID.Uint64(), nil
}

// SubmitDeployment broadcasts a contract creation transaction
func (c *Client) SubmitDeployment(ctx context.Context, signer *models.Signer, bytecode, constructorArgs []byte) (*models.PendingTx, error) {
	data := make([]byte, 0, len(bytecode)+len(constructorArgs))
	data = append(data, bytecode...)
	data = append(data, constructorArgs...)

	tx, err := c.send(ctx, signer, nil, data, nil)
	if err != nil {
		return nil, err
	}
	return &models.PendingTx{
		Hash:            tx.Hash(),
		From:            signer.Address,
		Nonce:           tx.Nonce(),
		ContractAddress: crypto.CreateAddress(signer.Address, tx.Nonce()),
	}, nil
}

// WaitDeployed waits for the creation to be mined and for code to appear at the address
func (c *Client) WaitDeployed(ctx context.Context, pending *models.PendingTx) (*models.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.backend, pending.Hash)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", pending.Hash.Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, c.replayRevert(ctx, pending.From, nil, nil, nil, receipt)
	}

	address, err := bind.WaitDeployed(ctx, c.backend, pending.Hash)
	if err != nil {
		return nil, err
	}
	return toReceipt(receipt, address), nil
}

// Transact sends a call transaction and waits for it to be mined
func (c *Client) Transact(ctx context.Context, signer *models.Signer, to common.Address, data []byte, value *big.Int) (*models.Receipt, error) {
	tx, err := c.send(ctx, signer, &to, data, value)
	if err != nil {
		return nil, err
	}

	receipt, err := bind.WaitMined(ctx, c.backend, tx.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, c.replayRevert(ctx, signer.Address, &to, data, value, receipt)
	}
	return toReceipt(receipt, common.Address{}), nil
}

// Call executes a read-only call against the latest block
func (c *Client) Call(ctx context.Context, from, to common.Address, data []byte) ([]byte, error) {
	out, err := c.backend.CallContract(ctx, ethereum.CallMsg{From: from, To: &to, Data: data}, nil)
	if err != nil {
		if revert, ok := revertFromError(err); ok {
			return nil, revert
		}
		return nil, err
	}
	return out, nil
}

// Close releases the underlying connection
func (c *Client) Close() {
	if c.close != nil {
		c.close()
	}
}

// send estimates, signs and broadcasts a transaction. A revert during
// estimation is returned as *domain.RevertError without broadcasting.
func (c *Client) send(ctx context.Context, signer *models.Signer, to *common.Address, data []byte, value *big.Int) (*types.Transaction, error) {
	if signer == nil || signer.PrivateKey == nil {
		return nil, domain.ErrNoPrivateKey
	}
	if value == nil {
		value = new(big.Int)
	}

	nonce, err := c.backend.PendingNonceAt(ctx, signer.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	gas, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  signer.Address,
		To:    to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		if revert, ok := revertFromError(err); ok {
			return nil, revert
		}
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}
	gas += gas * gasMarginPercent / 100

	txData, err := c.feeFields(ctx, nonce, to, gas, value, data)
	if err != nil {
		return nil, err
	}

	signed, err := types.SignNewTx(signer.PrivateKey, types.LatestSignerForChainID(c.chainID), txData)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		if revert, ok := revertFromError(err); ok {
			return nil, revert
		}
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}
	c.log.Debug("transaction sent", "hash", signed.Hash().Hex(), "from", signer.Address.Hex(), "nonce", nonce, "gas", gas)

	if c.commit != nil {
		c.commit()
	}
	return signed, nil
}

// feeFields builds an EIP-1559 transaction, or a legacy one on chains without a base fee
func (c *Client) feeFields(ctx context.Context, nonce uint64, to *common.Address, gas uint64, value *big.Int, data []byte) (types.TxData, error) {
	head, err := c.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}

	if head.BaseFee == nil {
		gasPrice, err := c.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}
		return &types.LegacyTx{Nonce: nonce, GasPrice: gasPrice, Gas: gas, To: to, Value: value, Data: data}, nil
	}

	tip, err := c.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas tip: %w", err)
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	return &types.DynamicFeeTx{
		ChainID:   c.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        to,
		Value:     value,
		Data:      data,
	}, nil
}

// replayRevert re-executes a failed transaction against the state it ran on
// to recover the revert reason the receipt doesn't carry.
func (c *Client) replayRevert(ctx context.Context, from common.Address, to *common.Address, data []byte, value *big.Int, receipt *types.Receipt) error {
	var block *big.Int
	if receipt.BlockNumber != nil && receipt.BlockNumber.Sign() > 0 {
		block = new(big.Int).Sub(receipt.BlockNumber, common.Big1)
	}
	_, err := c.backend.CallContract(ctx, ethereum.CallMsg{From: from, To: to, Value: value, Data: data}, block)
	if revert, ok := revertFromError(err); ok {
		return revert
	}
	c.log.Debug("could not recover revert reason", "tx", receipt.TxHash.Hex(), "error", err)
	return &domain.RevertError{}
}

func toReceipt(r *types.Receipt, contract common.Address) *models.Receipt {
	receipt := &models.Receipt{
		TxHash:          r.TxHash,
		GasUsed:         r.GasUsed,
		ContractAddress: contract,
		Success:         r.Status == types.ReceiptStatusSuccessful,
	}
	if r.BlockNumber != nil {
		receipt.BlockNumber = r.BlockNumber.Uint64()
	}
	return receipt
}

var _ usecase.ChainClient = (*Client)(nil)
