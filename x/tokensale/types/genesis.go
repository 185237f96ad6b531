package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultGenesis returns the default genesis state. It seeds the three launch
// tiers and opens the sale on the first one.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		SaleState: SaleState{
			CurrentTier: 1,
			Active:      true,
			Paused:      false,
		},
		TierList: []Tier{
			{Id: 1, PriceUsdCents: 5, Capacity: math.NewInt(2_000_000), Sold: math.ZeroInt()},
			{Id: 2, PriceUsdCents: 7, Capacity: math.NewInt(3_000_000), Sold: math.ZeroInt()},
			{Id: 3, PriceUsdCents: 10, Capacity: math.NewInt(5_000_000), Sold: math.ZeroInt()},
		},
		BuyerList:    []BuyerRecord{},
		FundAccounts: nil,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	tierIds := make(map[uint64]struct{})
	for _, tier := range gs.TierList {
		if tier.Id == 0 {
			return fmt.Errorf("tier id must be positive")
		}
		if _, ok := tierIds[tier.Id]; ok {
			return fmt.Errorf("duplicated tier id %d", tier.Id)
		}
		tierIds[tier.Id] = struct{}{}
		if tier.Capacity.IsNil() || !tier.Capacity.IsPositive() {
			return fmt.Errorf("tier %d capacity must be positive", tier.Id)
		}
		if tier.Sold.IsNil() || tier.Sold.IsNegative() {
			return fmt.Errorf("tier %d sold amount must not be negative", tier.Id)
		}
		if tier.Sold.GT(tier.Capacity) {
			return fmt.Errorf("tier %d sold amount %s exceeds capacity %s", tier.Id, tier.Sold, tier.Capacity)
		}
		if tier.PriceUsdCents == 0 {
			return fmt.Errorf("tier %d price must be positive", tier.Id)
		}
	}
	if gs.SaleState.CurrentTier != 0 {
		if _, ok := tierIds[gs.SaleState.CurrentTier]; !ok && len(gs.TierList) > 0 {
			return fmt.Errorf("current tier %d is not in the tier list", gs.SaleState.CurrentTier)
		}
	}

	buyerAddrs := make(map[string]struct{})
	for _, buyer := range gs.BuyerList {
		if _, err := sdk.AccAddressFromBech32(buyer.Address); err != nil {
			return fmt.Errorf("invalid buyer address %s: %w", buyer.Address, err)
		}
		if _, ok := buyerAddrs[buyer.Address]; ok {
			return fmt.Errorf("duplicated buyer address %s", buyer.Address)
		}
		buyerAddrs[buyer.Address] = struct{}{}
		if buyer.TotalPaid.IsNil() || buyer.TotalPaid.IsNegative() {
			return fmt.Errorf("buyer %s total paid must not be negative", buyer.Address)
		}
	}

	if gs.FundAccounts != nil {
		if _, err := sdk.AccAddressFromBech32(gs.FundAccounts.Treasury); err != nil {
			return fmt.Errorf("invalid treasury address: %w", err)
		}
		if _, err := sdk.AccAddressFromBech32(gs.FundAccounts.TaxCollector); err != nil {
			return fmt.Errorf("invalid tax collector address: %w", err)
		}
		if gs.FundAccounts.Treasury == gs.FundAccounts.TaxCollector {
			return fmt.Errorf("treasury and tax collector must be distinct accounts")
		}
	}

	return gs.Params.Validate()
}
