package tokenrpc

func (r *RpcClient) GetInfo(p GetInfoRequest) (*GetInfoResponse, error) {
	o := &GetInfoResponse{}
	return o, r.Request("get_info", p, o)
}

func (r *RpcClient) GetHolder(p GetHolderRequest) (*GetHolderResponse, error) {
	o := &GetHolderResponse{}
	return o, r.Request("get_holder", p, o)
}

func (r *RpcClient) ListHolders(p ListHoldersRequest) (*ListHoldersResponse, error) {
	o := &ListHoldersResponse{}
	return o, r.Request("list_holders", p, o)
}

func (r *RpcClient) GetBalance(p GetBalanceRequest) (*GetBalanceResponse, error) {
	o := &GetBalanceResponse{}
	return o, r.Request("get_balance", p, o)
}

func (r *RpcClient) Initialize(p InitializeRequest) (*InitializeResponse, error) {
	o := &InitializeResponse{}
	return o, r.Request("initialize", p, o)
}

func (r *RpcClient) SetTradingEnabled(p SetTradingEnabledRequest) (*SetTradingEnabledResponse, error) {
	o := &SetTradingEnabledResponse{}
	return o, r.Request("set_trading_enabled", p, o)
}

func (r *RpcClient) UpdateFees(p UpdateFeesRequest) (*UpdateFeesResponse, error) {
	o := &UpdateFeesResponse{}
	return o, r.Request("update_fees", p, o)
}

func (r *RpcClient) Transfer(p TransferRequest) (*TransferResponse, error) {
	o := &TransferResponse{}
	return o, r.Request("transfer", p, o)
}

func (r *RpcClient) MintTo(p MintToRequest) (*MintToResponse, error) {
	o := &MintToResponse{}
	return o, r.Request("mint_to", p, o)
}

func (r *RpcClient) Freeze(p FreezeRequest) (*FreezeResponse, error) {
	o := &FreezeResponse{}
	return o, r.Request("freeze", p, o)
}

func (r *RpcClient) Thaw(p FreezeRequest) (*FreezeResponse, error) {
	o := &FreezeResponse{}
	return o, r.Request("thaw", p, o)
}
